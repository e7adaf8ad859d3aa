// Package impl contains the implementation of the application's business logic.
package impl

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// passwordSpecials is the set of characters accepted as "special" when
// checking password strength.
const passwordSpecials = `!@#$%^&*()_+-=[]{}|;:,.<>?`

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validate is the shared validator instance. Struct validation is stateless
// and the instance caches struct metadata, so one instance serves the package.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// username allows letters, digits, underscores and hyphens. Length is
	// enforced separately with min/max tags so each violation reports its own
	// message.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return v
}

// --- Per-operation parameter structs ---
// Each operation validates a dedicated struct so the full set of violations
// is collected before any repository call happens.

type signUpParams struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

type signInParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type emailParams struct {
	Email string `json:"email" validate:"required,email"`
}

type tokenParams struct {
	Token string `json:"token" validate:"required,uuid4"`
}

type resetPasswordParams struct {
	Token string `json:"token" validate:"required,uuid4"`
}

type onboardingParams struct {
	Username string `json:"username" validate:"required,min=3,max=30,username"`
}

func validateSignUp(input usecase.SignUpInput) error {
	issues := collectIssues(validate.Struct(signUpParams{
		Email: input.Email,
		Name:  input.Name,
	}))
	issues = append(issues, passwordIssues("password", input.Password)...)

	return issuesToError(issues)
}

func validateSignIn(input usecase.SignInInput) error {
	issues := collectIssues(validate.Struct(signInParams{
		Email:    input.Email,
		Password: input.Password,
	}))

	return issuesToError(issues)
}

func validateEmail(email string) error {
	issues := collectIssues(validate.Struct(emailParams{Email: email}))

	return issuesToError(issues)
}

func validateToken(token string) error {
	issues := collectIssues(validate.Struct(tokenParams{Token: token}))

	return issuesToError(issues)
}

func validateResetPassword(input usecase.ResetPasswordInput) error {
	issues := collectIssues(validate.Struct(resetPasswordParams{Token: input.Token}))
	issues = append(issues, passwordIssues("newPassword", input.NewPassword)...)

	return issuesToError(issues)
}

func validateOnboarding(input usecase.CompleteOnboardingInput) error {
	issues := collectIssues(validate.Struct(onboardingParams{
		Username: input.Username,
	}))

	return issuesToError(issues)
}

// passwordIssues checks password strength and reports every unmet rule, not
// just the first one.
func passwordIssues(field, password string) []domainerrors.FieldIssue {
	var issues []domainerrors.FieldIssue

	if len(password) < 8 {
		issues = append(issues, domainerrors.FieldIssue{Field: field, Message: "Password must be at least 8 characters long"})
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		issues = append(issues, domainerrors.FieldIssue{Field: field, Message: "Password must contain at least one uppercase letter"})
	}
	if !hasLower {
		issues = append(issues, domainerrors.FieldIssue{Field: field, Message: "Password must contain at least one lowercase letter"})
	}
	if !hasDigit {
		issues = append(issues, domainerrors.FieldIssue{Field: field, Message: "Password must contain at least one number"})
	}
	if !hasSpecial {
		issues = append(issues, domainerrors.FieldIssue{Field: field, Message: "Password must contain at least one special character"})
	}

	return issues
}

// collectIssues flattens a validator error into field issues with
// human-readable messages.
func collectIssues(err error) []domainerrors.FieldIssue {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domainerrors.FieldIssue{{Field: "", Message: "Invalid input"}}
	}

	issues := make([]domainerrors.FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, domainerrors.FieldIssue{Field: fe.Field(), Message: issueMessage(fe)})
	}

	return issues
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters long"
	case "max":
		return "Must be at most " + fe.Param() + " characters long"
	case "uuid4":
		return "Must be a valid token"
	case "username":
		return "May only contain letters, numbers, underscores, and hyphens"
	default:
		return "Invalid value"
	}
}

func issuesToError(issues []domainerrors.FieldIssue) error {
	if len(issues) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(issues)
}
