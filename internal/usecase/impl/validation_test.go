package impl

import (
	"testing"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationIssues(t *testing.T, err error) []domainerrors.FieldIssue {
	t.Helper()

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)

	return verr.Issues()
}

func issueFields(issues []domainerrors.FieldIssue) []string {
	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}

	return fields
}

func TestValidateSignUp_Valid(t *testing.T) {
	err := validateSignUp(usecase.SignUpInput{
		Email:    "user@example.com",
		Password: "StrongPass123!",
		Name:     "Test User",
	})
	assert.NoError(t, err)

	// Name is optional.
	err = validateSignUp(usecase.SignUpInput{
		Email:    "user@example.com",
		Password: "StrongPass123!",
	})
	assert.NoError(t, err)
}

func TestValidateSignUp_CollectsAllIssues(t *testing.T) {
	// Bad email plus a password missing length, uppercase, digit and special
	// character must report every violation at once.
	err := validateSignUp(usecase.SignUpInput{
		Email:    "not-an-email",
		Password: "abc",
	})

	issues := requireValidationIssues(t, err)
	fields := issueFields(issues)

	assert.Contains(t, fields, "email")
	passwordIssueCount := 0
	for _, issue := range issues {
		if issue.Field == "password" {
			passwordIssueCount++
		}
	}
	assert.Equal(t, 4, passwordIssueCount)
}

func TestValidateSignUp_PasswordRules(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab1!", "Password must be at least 8 characters long"},
		{"no uppercase", "password123!", "Password must contain at least one uppercase letter"},
		{"no lowercase", "PASSWORD123!", "Password must contain at least one lowercase letter"},
		{"no digit", "PasswordABC!", "Password must contain at least one number"},
		{"no special", "Password123", "Password must contain at least one special character"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSignUp(usecase.SignUpInput{
				Email:    "user@example.com",
				Password: tc.password,
			})

			issues := requireValidationIssues(t, err)
			messages := make([]string, 0, len(issues))
			for _, issue := range issues {
				messages = append(messages, issue.Message)
			}
			assert.Contains(t, messages, tc.wantMsg)
		})
	}
}

func TestValidateSignIn(t *testing.T) {
	assert.NoError(t, validateSignIn(usecase.SignInInput{
		Email:    "user@example.com",
		Password: "x",
	}))

	// Sign-in only requires a non-empty password; strength is not re-checked.
	err := validateSignIn(usecase.SignInInput{Email: "user@example.com"})
	issues := requireValidationIssues(t, err)
	assert.Equal(t, []string{"password"}, issueFields(issues))

	err = validateSignIn(usecase.SignInInput{Email: "nope", Password: "x"})
	issues = requireValidationIssues(t, err)
	assert.Equal(t, []string{"email"}, issueFields(issues))
}

func TestValidateToken(t *testing.T) {
	assert.NoError(t, validateToken("a2f1c7e8-5b6d-4c3e-9f0a-1b2c3d4e5f60"))

	// Opaque tokens are v4 UUIDs; anything else is rejected before any store
	// lookup happens.
	for _, bad := range []string{"", "not-a-uuid", "12345"} {
		err := validateToken(bad)
		issues := requireValidationIssues(t, err)
		assert.Equal(t, []string{"token"}, issueFields(issues))
	}
}

func TestValidateResetPassword(t *testing.T) {
	assert.NoError(t, validateResetPassword(usecase.ResetPasswordInput{
		Token:       "a2f1c7e8-5b6d-4c3e-9f0a-1b2c3d4e5f60",
		NewPassword: "StrongPass123!",
	}))

	err := validateResetPassword(usecase.ResetPasswordInput{
		Token:       "bad-token",
		NewPassword: "weak",
	})
	issues := requireValidationIssues(t, err)
	fields := issueFields(issues)
	assert.Contains(t, fields, "token")
	assert.Contains(t, fields, "newPassword")
}

func TestValidateOnboarding(t *testing.T) {
	assert.NoError(t, validateOnboarding(usecase.CompleteOnboardingInput{Username: "valid_user-1"}))

	cases := []struct {
		name     string
		username string
	}{
		{"too short", "ab"},
		{"too long", "a123456789012345678901234567890"},
		{"bad characters", "bad user!"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateOnboarding(usecase.CompleteOnboardingInput{Username: tc.username})
			issues := requireValidationIssues(t, err)
			assert.Equal(t, []string{"username"}, issueFields(issues))
		})
	}
}
