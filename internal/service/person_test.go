package service

import (
	"context"
	"errors"
	"testing"

	"github.com/modelsec/security-admin/internal/apierror"
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/repository"
)

func newPersonService(t *testing.T) *PersonService {
	t.Helper()
	db := setupTestDB(t)
	return NewPersonService(repository.New[model.Person, *model.Person](db), nil)
}

func TestPersonCreateSynthesizesEmail(t *testing.T) {
	svc := newPersonService(t)
	ctx := context.Background()

	out, err := svc.Create(ctx, dto.Person{
		FirstName:            "Juan",
		LastName:             "Perez",
		NumberIdentification: 12345,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Email != "juan.perez@generated.local" {
		t.Fatalf("expected synthesized email, got %q", out.Email)
	}
	if out.DisplayName != "Juan Perez" {
		t.Fatalf("unexpected display name: %q", out.DisplayName)
	}
}

func TestPersonValidation(t *testing.T) {
	svc := newPersonService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		in    dto.Person
		field string
	}{
		{"missing first name", dto.Person{LastName: "Perez", NumberIdentification: 1}, "FirstName"},
		{"missing last name", dto.Person{FirstName: "Juan", NumberIdentification: 1}, "LastName"},
		{"bad identification", dto.Person{FirstName: "Juan", LastName: "Perez"}, "NumberIdentification"},
		{"bad email", dto.Person{FirstName: "Juan", LastName: "Perez", NumberIdentification: 1, Email: "not-valid"}, "Email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			var ve *apierror.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestPersonPatchEmailChecked(t *testing.T) {
	svc := newPersonService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.Person{
		FirstName: "Juan", LastName: "Perez", NumberIdentification: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var ve *apierror.ValidationError
	if _, err := svc.Patch(ctx, created.ID, dto.Person{Email: "broken"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "Email" {
		t.Fatalf("expected Email field, got %q", ve.Field)
	}

	// A negative identification number is rejected on the patch path too.
	if _, err := svc.Patch(ctx, created.ID, dto.Person{NumberIdentification: -5}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "NumberIdentification" {
		t.Fatalf("expected NumberIdentification field, got %q", ve.Field)
	}
	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.NumberIdentification != 1 {
		t.Fatalf("rejected patch must not persist, got %d", got.NumberIdentification)
	}

	out, err := svc.Patch(ctx, created.ID, dto.Person{PhoneNumber: "555-0101"})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if out.PhoneNumber != "555-0101" {
		t.Fatalf("phone not patched: %q", out.PhoneNumber)
	}
	if out.FirstName != "Juan" {
		t.Fatalf("untouched field changed: %q", out.FirstName)
	}
}
