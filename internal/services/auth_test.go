package services

import (
	"errors"
	"testing"

	"github.com/hiveproductions/hive/backend/internal/config"
	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/internal/utils"
	"github.com/hiveproductions/hive/backend/pkg/response"
)

func newAuthService(t *testing.T) (*AuthService, *config.JWTConfig) {
	t.Helper()
	utils.SetJWTSecret("test-secret-for-auth-testing")
	jwtCfg := &config.JWTConfig{Secret: "test-secret-for-auth-testing", ExpireHour: 24}
	return NewAuthService(newTestDB(t), jwtCfg), jwtCfg
}

func TestVerifySignupCode(t *testing.T) {
	svc, _ := newAuthService(t)
	seedOrganization(t, svc.db, "HIVE Productions", "HIVE2024")

	org, err := svc.VerifySignupCode("HIVE2024")
	if err != nil {
		t.Fatalf("VerifySignupCode: %v", err)
	}
	if org.Name != "HIVE Productions" {
		t.Errorf("Name = %q, expected HIVE Productions", org.Name)
	}

	_, err = svc.VerifySignupCode("WRONG")
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != 400 {
		t.Errorf("expected a 400 for an invalid code, got %v", err)
	}
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	org := seedOrganization(t, svc.db, "HIVE Productions", "HIVE2024")

	result, err := svc.Signup(&SignupRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
		SignupCode: "HIVE2024",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token on signup")
	}
	if result.User.OrganizationID != org.ID {
		t.Errorf("OrganizationID = %d, expected %d", result.User.OrganizationID, org.ID)
	}

	login, err := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := utils.ParseToken(login.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != result.User.ID || claims.OrganizationID != org.ID {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestSignup_InvalidCode(t *testing.T) {
	svc, _ := newAuthService(t)
	seedOrganization(t, svc.db, "HIVE Productions", "HIVE2024")

	_, err := svc.Signup(&SignupRequest{
		Email: "alice@example.com", Password: "secret123", SignupCode: "WRONG",
	})
	if err == nil {
		t.Fatal("expected an invalid signup code to be rejected")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	seedOrganization(t, svc.db, "HIVE Productions", "HIVE2024")

	first := &SignupRequest{Email: "alice@example.com", Password: "secret123", SignupCode: "HIVE2024"}
	if _, err := svc.Signup(first); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(first); err == nil {
		t.Fatal("expected the duplicate email to be rejected")
	}
}

func TestLogin_UniformFailure(t *testing.T) {
	svc, _ := newAuthService(t)
	seedOrganization(t, svc.db, "HIVE Productions", "HIVE2024")
	if _, err := svc.Signup(&SignupRequest{
		Email: "alice@example.com", Password: "secret123", SignupCode: "HIVE2024",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// unknown email and wrong password must fail identically
	_, unknownErr := svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	_, wrongErr := svc.Login(&LoginRequest{Email: "alice@example.com", Password: "wrong"})

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("expected both logins to fail")
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("failure messages differ: %q vs %q", unknownErr, wrongErr)
	}

	var appErr *response.AppError
	if !errors.As(unknownErr, &appErr) || appErr.HTTPStatus != 401 {
		t.Errorf("expected a 401, got %v", unknownErr)
	}
}

func TestSeedDefaults(t *testing.T) {
	svc, _ := newAuthService(t)
	seed := &config.SeedConfig{
		Enabled:          true,
		OrganizationName: "HIVE Productions",
		SignupCode:       "HIVE2024",
		AdminEmail:       "admin@hiveproductions.com",
		AdminName:        "Admin",
		AdminPassword:    "changeme123",
	}

	if err := svc.SeedDefaults(seed); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	if _, err := svc.Login(&LoginRequest{Email: "admin@hiveproductions.com", Password: "changeme123"}); err != nil {
		t.Errorf("seeded admin cannot log in: %v", err)
	}

	// idempotent: an existing organization blocks a second seed
	if err := svc.SeedDefaults(seed); err != nil {
		t.Fatalf("second SeedDefaults: %v", err)
	}
	var count int64
	svc.db.Model(&models.Organization{}).Count(&count)
	if count != 1 {
		t.Errorf("organization count = %d, expected 1", count)
	}
}
