package utils

import (
	"errors"
	"testing"
)

func TestIsDuplicateError(t *testing.T) {
	dup := errors.New("Error 1062 (23000): Duplicate entry 'jane@example.com' for key 'users.idx_users_email'")
	if !IsDuplicateError(dup) {
		t.Error("MySQL 1062 error not detected as duplicate")
	}
	if IsDuplicateError(nil) {
		t.Error("nil is not a duplicate error")
	}
	if IsDuplicateError(errors.New("connection refused")) {
		t.Error("unrelated error detected as duplicate")
	}
}
