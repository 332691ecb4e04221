package dto

import "testing"

func TestRegisterRequestValidateMissingFields(t *testing.T) {
	req := RegisterRequest{}
	errs := req.Validate()

	for _, field := range []string{"username", "email", "password", "role_id"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected validation error for %s", field)
		}
	}
}

func TestRegisterRequestValidateBadEmail(t *testing.T) {
	req := RegisterRequest{
		Username: "jane",
		Email:    "not-an-email",
		Password: "supersecret",
		RoleID:   1,
	}
	if errs := req.Validate(); errs["email"] == "" {
		t.Error("expected validation error for malformed email")
	}
}

func TestRegisterRequestValidateShortPassword(t *testing.T) {
	req := RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "short",
		RoleID:   1,
	}
	if errs := req.Validate(); errs["password"] == "" {
		t.Error("expected validation error for short password")
	}
}

func TestRegisterRequestValidateOK(t *testing.T) {
	req := RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "supersecret",
		RoleID:   1,
	}
	if errs := req.Validate(); len(errs) > 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{}
	errs := req.Validate()
	if errs["email"] == "" || errs["password"] == "" {
		t.Errorf("expected errors for email and password, got %v", errs)
	}

	req = LoginRequest{Email: "jane@example.com", Password: "supersecret"}
	if errs := req.Validate(); len(errs) > 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}
