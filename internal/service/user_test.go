package service

import (
	"context"
	"errors"
	"testing"

	"github.com/modelsec/security-admin/internal/apierror"
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/repository"
	"github.com/modelsec/security-admin/internal/utils"
	"gorm.io/gorm"
)

const testBcryptCost = 4 // min cost keeps the suite fast

func newUserService(t *testing.T) (*UserService, *repository.UserRepository, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	return NewUserService(users, testBcryptCost, nil), users, db
}

func seedPerson(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	svc := NewPersonService(repository.New[model.Person, *model.Person](db), nil)
	p, err := svc.Create(context.Background(), dto.Person{
		FirstName:            "Ana",
		LastName:             "Diaz",
		NumberIdentification: 1001,
	})
	if err != nil {
		t.Fatalf("seed person: %v", err)
	}
	return p.ID
}

func TestUserCreateHashesPassword(t *testing.T) {
	svc, users, db := newUserService(t)
	ctx := context.Background()
	personID := seedPerson(t, db)

	out, err := svc.Create(ctx, dto.User{
		Username: "Ana",
		Email:    "ana@test.local",
		Password: "s3cret",
		PersonID: personID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Password != "" {
		t.Fatal("password must never be echoed back")
	}
	if out.Username != "ana" {
		t.Fatalf("expected normalized username, got %q", out.Username)
	}

	stored, err := users.GetByID(ctx, out.ID)
	if err != nil || stored == nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Password == "s3cret" {
		t.Fatal("password stored in plain text")
	}
	if !utils.VerifyPassword(stored.Password, "s3cret") {
		t.Fatal("stored hash does not verify")
	}
}

func TestUserCreateValidation(t *testing.T) {
	svc, _, db := newUserService(t)
	ctx := context.Background()
	personID := seedPerson(t, db)

	cases := []struct {
		name  string
		in    dto.User
		field string
	}{
		{"missing password", dto.User{Username: "a", Email: "a@b.c", PersonID: personID}, "Password"},
		{"missing username", dto.User{Email: "a@b.c", Password: "x", PersonID: personID}, "Username"},
		{"bad email", dto.User{Username: "a", Email: "not-an-email", Password: "x", PersonID: personID}, "Email"},
		{"missing person", dto.User{Username: "a", Email: "a@b.c", Password: "x"}, "PersonId"},
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

func TestUserPasswordOnlyPatch(t *testing.T) {
	svc, users, db := newUserService(t)
	ctx := context.Background()
	personID := seedPerson(t, db)

	created, err := svc.Create(ctx, dto.User{
		Username: "ana", Email: "ana@test.local", Password: "old", PersonID: personID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := svc.Patch(ctx, created.ID, dto.User{Password: "newpass"})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if out.Username != "ana" || out.Email != "ana@test.local" {
		t.Fatalf("profile fields must be untouched: %+v", out)
	}

	stored, _ := users.GetByID(ctx, created.ID)
	if !utils.VerifyPassword(stored.Password, "newpass") {
		t.Fatal("new password does not verify")
	}
	if utils.VerifyPassword(stored.Password, "old") {
		t.Fatal("old password still verifies")
	}

	var nf *apierror.NotFoundError
	if _, err := svc.Patch(ctx, 999, dto.User{Password: "x"}); !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserProfilePatchIgnoresPassword(t *testing.T) {
	svc, users, db := newUserService(t)
	ctx := context.Background()
	personID := seedPerson(t, db)

	created, err := svc.Create(ctx, dto.User{
		Username: "ana", Email: "ana@test.local", Password: "keepme", PersonID: personID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Password mixed with a profile field: only the profile field applies.
	out, err := svc.Patch(ctx, created.ID, dto.User{Email: "new@test.local", Password: "hacked"})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if out.Email != "new@test.local" {
		t.Fatalf("email not patched: %q", out.Email)
	}
	stored, _ := users.GetByID(ctx, created.ID)
	if !utils.VerifyPassword(stored.Password, "keepme") {
		t.Fatal("password must not change on a profile patch")
	}

	// Bad email in a patch is rejected.
	var ve *apierror.ValidationError
	if _, err := svc.Patch(ctx, created.ID, dto.User{Email: "nope"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUserRoles(t *testing.T) {
	svc, _, db := newUserService(t)
	ctx := context.Background()
	personID := seedPerson(t, db)

	created, err := svc.Create(ctx, dto.User{
		Username: "ana", Email: "ana@test.local", Password: "x", PersonID: personID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rols := NewRolService(repository.New[model.Rol, *model.Rol](db), repository.NewRolFormRepository(db), nil)
	userRols := NewUserRolService(repository.New[model.UserRol, *model.UserRol](db), nil)
	rol, err := rols.Create(ctx, dto.Rol{TypeRol: "Admin"})
	if err != nil {
		t.Fatalf("rol: %v", err)
	}
	if _, err := userRols.Create(ctx, dto.UserRol{UserID: created.ID, RolID: rol.ID}); err != nil {
		t.Fatalf("grant: %v", err)
	}

	got, err := svc.Roles(ctx, created.ID)
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	if len(got) != 1 || got[0].TypeRol != "Admin" {
		t.Fatalf("unexpected roles: %+v", got)
	}
}
