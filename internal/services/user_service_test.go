package services

import (
	"context"
	"testing"
	"time"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
	"estateBack/utils"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	tokens, err := utils.NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return &UserService{
		UserRepo:   repositories.NewUserMemoryRepository(),
		Tokens:     tokens,
		AdminEmail: "admin@site.com",
		TokenTTL:   time.Hour,
	}
}

func TestSignUpRoleByEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"regular user", "alice@example.com", models.RoleUser},
		{"admin email", "admin@site.com", models.RoleAdmin},
		{"admin email different case", "Admin@Site.com", models.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.SignUp(ctx, models.SignUpRequest{Name: "n", Email: tt.email, Password: "pw"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.User.Role != tt.want {
				t.Fatalf("got role %q, want %q", resp.User.Role, tt.want)
			}
			if resp.AccessToken == "" {
				t.Fatal("expected an access token")
			}
		})
	}
}

func TestSignUpTokenCarriesClaims(t *testing.T) {
	svc := newUserService(t)
	resp, err := svc.SignUp(context.Background(), models.SignUpRequest{Email: "admin@site.com", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := svc.Tokens.Parse(resp.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Fatalf("token user %q, want %q", claims.UserID, resp.User.ID)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("token role %q, want admin", claims.Role)
	}
}

func TestSignInCreatesUnknownUser(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	resp, err := svc.SignIn(ctx, models.SignInRequest{Email: "new@example.com", Password: "whatever"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.Name != "new" {
		t.Fatalf("expected name from the email local part, got %q", resp.User.Name)
	}

	// Any password is accepted on a second sign-in.
	again, err := svc.SignIn(ctx, models.SignInRequest{Email: "new@example.com", Password: "different"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.User.ID != resp.User.ID {
		t.Fatalf("expected the same user record, got %q and %q", resp.User.ID, again.User.ID)
	}
}

func TestRepeatedSignUpSignsBackIn(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	first, err := svc.SignUp(ctx, models.SignUpRequest{Name: "Bob", Email: "bob@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SignUp(ctx, models.SignUpRequest{Name: "Bob", Email: "bob@example.com", Password: "pw2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.User.ID != second.User.ID {
		t.Fatalf("duplicate sign-up created a new user: %q vs %q", first.User.ID, second.User.ID)
	}
}

func TestSignUpRequiresEmail(t *testing.T) {
	svc := newUserService(t)
	_, err := svc.SignUp(context.Background(), models.SignUpRequest{Name: "n", Password: "pw"})
	if _, ok := err.(*models.ValidationError); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}
