package auth

import "testing"

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{"valid", Credentials{Email: "patient@demo.com", Password: "demo123"}, false},
		{"missing email", Credentials{Password: "demo123"}, true},
		{"malformed email", Credentials{Email: "not-an-email", Password: "demo123"}, true},
		{"missing password", Credentials{Email: "patient@demo.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegistrationValidate(t *testing.T) {
	valid := Registration{
		Email:     "new@demo.com",
		Password:  "secret7",
		FirstName: "Asha",
		LastName:  "Rao",
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Registration)
	}{
		{"missing email", func(r *Registration) { r.Email = "" }},
		{"malformed email", func(r *Registration) { r.Email = "nope" }},
		{"missing first name", func(r *Registration) { r.FirstName = "" }},
		{"missing last name", func(r *Registration) { r.LastName = "" }},
		{"short password", func(r *Registration) { r.Password = "abc" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := valid
			tt.mutate(&reg)
			if err := reg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
