package service

import (
	"net/mail"
	"strings"

	"github.com/modelsec/security-admin/internal/apierror"
)

// requireID rejects the zero id before any repository access.
func requireID(id uint) error {
	if id == 0 {
		return apierror.NewValidation("Id", "must be a positive integer")
	}
	return nil
}

// requireField rejects blank required string fields.
func requireField(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return apierror.NewValidation(field, "is required")
	}
	return nil
}

// requireEmail applies a permissive parse-based format check.
func requireEmail(field, v string) error {
	if _, err := mail.ParseAddress(v); err != nil {
		return apierror.NewValidation(field, "is not a valid email address")
	}
	return nil
}

// requireFK rejects zero foreign key references.
func requireFK(field string, v uint) error {
	if v == 0 {
		return apierror.NewValidation(field, "must reference an existing record")
	}
	return nil
}

// patchString overwrites dst when v is non-empty and differs, reporting
// whether it did.
func patchString(dst *string, v string) bool {
	if strings.TrimSpace(v) == "" || v == *dst {
		return false
	}
	*dst = v
	return true
}

// patchInt64 overwrites dst when v is non-zero and differs.
func patchInt64(dst *int64, v int64) bool {
	if v == 0 || v == *dst {
		return false
	}
	*dst = v
	return true
}
