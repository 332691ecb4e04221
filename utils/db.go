package utils

import "strings"

// IsDuplicateError reports whether err is a MySQL unique-constraint violation
// (error 1062). Uniqueness for usernames, emails and role names is enforced
// with unique indexes, so concurrent check-then-insert races still surface
// here rather than corrupting the table.
func IsDuplicateError(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate entry")
}
