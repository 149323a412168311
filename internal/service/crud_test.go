package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/modelsec/security-admin/internal/apierror"
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Person{}, &model.User{}, &model.Rol{}, &model.Form{},
		&model.Module{}, &model.UserRol{}, &model.RolForm{}, &model.FormModule{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newRolService(t *testing.T) (*RolService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	repo := repository.New[model.Rol, *model.Rol](db)
	return NewRolService(repo, repository.NewRolFormRepository(db), nil), db
}

func TestCrudCreateDefaults(t *testing.T) {
	svc, _ := newRolService(t)
	ctx := context.Background()

	out, err := svc.Create(ctx, dto.Rol{TypeRol: "Admin", Description: "Full access"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.ID == 0 {
		t.Fatal("expected id")
	}
	if !out.Active {
		t.Fatal("new entities must start active")
	}
	if out.CreateDate.IsZero() || out.UpdateDate.IsZero() {
		t.Fatal("expected audit timestamps stamped")
	}
	if out.DeleteDate != nil {
		t.Fatal("delete date must be unset on create")
	}
}

func TestCrudValidation(t *testing.T) {
	svc, _ := newRolService(t)
	ctx := context.Background()

	// Missing required field.
	_, err := svc.Create(ctx, dto.Rol{Description: "no type"})
	var ve *apierror.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "TypeRol" {
		t.Fatalf("expected TypeRol field, got %q", ve.Field)
	}

	// Zero id is rejected before touching the repository.
	_, err = svc.GetByID(ctx, 0)
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for id 0, got %v", err)
	}

	// Missing entity.
	_, err = svc.GetByID(ctx, 42)
	var nf *apierror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
	if nf.Entity != "rol" || nf.ID != 42 {
		t.Fatalf("unexpected not found payload: %+v", nf)
	}
}

func TestCrudUpdateReplacesFields(t *testing.T) {
	svc, _ := newRolService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.Rol{TypeRol: "Operator", Description: "ops"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	out, err := svc.Update(ctx, created.ID, dto.Rol{TypeRol: "Supervisor", Description: ""})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.TypeRol != "Supervisor" {
		t.Fatalf("expected replaced type, got %q", out.TypeRol)
	}
	// PUT overwrites, empty description included.
	if out.Description != "" {
		t.Fatalf("expected description cleared, got %q", out.Description)
	}

	_, err = svc.Update(ctx, 999, dto.Rol{TypeRol: "x"})
	var nf *apierror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found on update, got %v", err)
	}
}

func TestCrudPatchSemantics(t *testing.T) {
	svc, _ := newRolService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.Rol{TypeRol: "Auditor", Description: "read only"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Only the supplied field changes.
	out, err := svc.Patch(ctx, created.ID, dto.Rol{Description: "review access"})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if out.TypeRol != "Auditor" {
		t.Fatalf("untouched field changed: %q", out.TypeRol)
	}
	if out.Description != "review access" {
		t.Fatalf("patched field not applied: %q", out.Description)
	}
	firstUpdate := out.UpdateDate

	// An empty patch writes nothing: the update timestamp stays put.
	out, err = svc.Patch(ctx, created.ID, dto.Rol{})
	if err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if !out.UpdateDate.Equal(firstUpdate) {
		t.Fatal("empty patch must not persist")
	}

	// Same values again: also no write.
	out, err = svc.Patch(ctx, created.ID, dto.Rol{Description: "review access"})
	if err != nil {
		t.Fatalf("no-op patch: %v", err)
	}
	if !out.UpdateDate.Equal(firstUpdate) {
		t.Fatal("unchanged patch must not persist")
	}
}

func TestCrudSoftDeleteAndActivate(t *testing.T) {
	svc, _ := newRolService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.Rol{TypeRol: "Temp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SoftDelete(ctx, created.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	out, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after soft delete: %v", err)
	}
	if out.Active {
		t.Fatal("expected inactive")
	}
	if out.DeleteDate == nil {
		t.Fatal("expected delete date")
	}

	// Idempotent.
	if err := svc.SoftDelete(ctx, created.ID); err != nil {
		t.Fatalf("repeat soft delete: %v", err)
	}

	if err := svc.Activate(ctx, created.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}
	out, _ = svc.GetByID(ctx, created.ID)
	if !out.Active {
		t.Fatal("expected active after activate")
	}
	if err := svc.Activate(ctx, created.ID); err != nil {
		t.Fatalf("repeat activate: %v", err)
	}

	var nf *apierror.NotFoundError
	if err := svc.SoftDelete(ctx, 777); !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCrudDelete(t *testing.T) {
	svc, _ := newRolService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.Rol{TypeRol: "Ephemeral"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var nf *apierror.NotFoundError
	if _, err := svc.GetByID(ctx, created.ID); !errors.As(err, &nf) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.As(err, &nf) {
		t.Fatalf("expected not found on double delete, got %v", err)
	}
}

func TestRolFormsRelation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	rolForms := repository.NewRolFormRepository(db)
	rols := NewRolService(repository.New[model.Rol, *model.Rol](db), rolForms, nil)
	forms := NewFormService(repository.New[model.Form, *model.Form](db), nil)
	assignments := NewRolFormService(rolForms, nil)

	rol, err := rols.Create(ctx, dto.Rol{TypeRol: "Admin"})
	if err != nil {
		t.Fatalf("rol: %v", err)
	}
	form, err := forms.Create(ctx, dto.Form{Name: "users", Route: "/users"})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if _, err := assignments.Create(ctx, dto.RolForm{RolID: rol.ID, FormID: form.ID, Permission: "read"}); err != nil {
		t.Fatalf("assignment: %v", err)
	}

	got, err := rols.Forms(ctx, rol.ID)
	if err != nil {
		t.Fatalf("forms: %v", err)
	}
	if len(got) != 1 || got[0].Name != "users" {
		t.Fatalf("unexpected forms: %+v", got)
	}

	var nf *apierror.NotFoundError
	if _, err := rols.Forms(ctx, 555); !errors.As(err, &nf) {
		t.Fatalf("expected not found for missing rol, got %v", err)
	}
}

func TestStateToggle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := repository.New[model.Module, *model.Module](db)
	modules := NewModuleService(repo, repository.NewFormModuleRepository(db), nil)
	state := NewState(repo)

	m, err := modules.Create(ctx, dto.Module{Name: "security"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := state.ChangeState(ctx, m.ID, false)
	if err != nil || !ok {
		t.Fatalf("deactivate: ok=%v err=%v", ok, err)
	}
	out, _ := modules.GetByID(ctx, m.ID)
	if out.Active {
		t.Fatal("expected inactive")
	}

	ok, err = state.ChangeState(ctx, m.ID, true)
	if err != nil || !ok {
		t.Fatalf("activate: ok=%v err=%v", ok, err)
	}

	ok, err = state.ChangeState(ctx, 404, false)
	if err != nil {
		t.Fatalf("missing: %v", err)
	}
	if ok {
		t.Fatal("expected false for missing row")
	}
}
