package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSigningSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when JWT_SECRET is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
	if cfg.SegmenterAddr != "segmenter:50051" {
		t.Fatalf("unexpected segmenter addr %q", cfg.SegmenterAddr)
	}
	if cfg.DatabaseDSN != "" || cfg.RedisAddr != "" {
		t.Fatalf("history and cache must default to disabled: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("OCR_LANGUAGES", "eng,deu")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
	if len(cfg.OCRLanguages) != 2 || cfg.OCRLanguages[0] != "eng" || cfg.OCRLanguages[1] != "deu" {
		t.Fatalf("unexpected languages %v", cfg.OCRLanguages)
	}
}
