package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"secretKey": "",
		},
		"mail": map[string]any{
			"apiKey":      "",
			"fromAddress": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{envKey: "MAIL_APIKEY", want: "mail.apiKey"},
		{envKey: "MAIL_FROMADDRESS", want: "mail.fromAddress"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.JWT == nil || cfg.JWT.Expiry != defaultJWTExpiry {
		t.Fatalf("expected default JWT expiry %v, got %+v", defaultJWTExpiry, cfg.JWT)
	}
	if cfg.Auth == nil || cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("expected default bcrypt cost %d, got %+v", defaultBcryptCost, cfg.Auth)
	}
	if cfg.RateLimit == nil || cfg.RateLimit.SignInPerMinute != defaultSignInPerMinute {
		t.Fatalf("expected default sign-in limit %d, got %+v", defaultSignInPerMinute, cfg.RateLimit)
	}
}
