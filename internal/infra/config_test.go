package infra

import "testing"

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_COUNTRY_CODE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.DefaultCountryCode != "+91" {
		t.Fatalf("DefaultCountryCode mismatch: got %q want %q", cfg.DefaultCountryCode, "+91")
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin mismatch: got %d want 30", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigNormalizesCountryCode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("DEFAULT_COUNTRY_CODE", "44")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DefaultCountryCode != "+44" {
		t.Fatalf("DefaultCountryCode mismatch: got %q want %q", cfg.DefaultCountryCode, "+44")
	}
}

func TestLoadConfigSplitsCORSOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://donate.example.com ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"http://localhost:3000", "https://donate.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Fatalf("CORSAllowedOrigins[%d] mismatch: got %q want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
}
