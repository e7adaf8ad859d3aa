package service

import "context"

// Mailer delivers verification and reset links to users. The core supplies
// only the recipient and the token; the mailer builds the link from its
// configured application URL. Delivery failures are logged by callers and
// never roll back the surrounding operation.
type Mailer interface {
	// SendVerificationEmail sends an email-verification link and returns the
	// provider-side message ID.
	SendVerificationEmail(ctx context.Context, email, token string) (string, error)

	// SendPasswordResetEmail sends a password-reset link and returns the
	// provider-side message ID.
	SendPasswordResetEmail(ctx context.Context, email, token string) (string, error)
}
