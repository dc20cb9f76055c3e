package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AICODER_SERVER_URL", "")
	t.Setenv("AICODER_LOGIN_TIMEOUT", "")
	t.Setenv("AICODER_GENERATE_TIMEOUT", "")
	t.Setenv("AICODER_DEBUG", "")

	c := Load()

	if c.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", c.ServerURL, DefaultServerURL)
	}
	if c.LoginTimeout != 30*time.Second {
		t.Errorf("LoginTimeout = %v, want 30s", c.LoginTimeout)
	}
	if c.GenerateTimeout != 3*time.Minute {
		t.Errorf("GenerateTimeout = %v, want 3m", c.GenerateTimeout)
	}
	if c.Debug {
		t.Error("Debug = true, want false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AICODER_SERVER_URL", "http://localhost:8080")
	t.Setenv("AICODER_LOGIN_TIMEOUT", "5s")
	t.Setenv("AICODER_GENERATE_TIMEOUT", "45s")
	t.Setenv("AICODER_DEBUG", "true")

	c := Load()

	if c.ServerURL != "http://localhost:8080" {
		t.Errorf("ServerURL = %q, want http://localhost:8080", c.ServerURL)
	}
	if c.LoginTimeout != 5*time.Second {
		t.Errorf("LoginTimeout = %v, want 5s", c.LoginTimeout)
	}
	if c.GenerateTimeout != 45*time.Second {
		t.Errorf("GenerateTimeout = %v, want 45s", c.GenerateTimeout)
	}
	if !c.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadIgnoresInvalidDurations(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a duration", value: "soon"},
		{name: "negative", value: "-10s"},
		{name: "zero", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AICODER_GENERATE_TIMEOUT", tt.value)
			c := Load()
			if c.GenerateTimeout != 3*time.Minute {
				t.Errorf("GenerateTimeout = %v, want default 3m", c.GenerateTimeout)
			}
		})
	}
}
