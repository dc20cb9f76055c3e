package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantToken   string
		expectError bool
	}{
		{
			name:      "success returns token verbatim",
			status:    http.StatusOK,
			body:      `{"token":"tok-4f7a"}`,
			wantToken: "tok-4f7a",
		},
		{
			name:      "201 is still success",
			status:    http.StatusCreated,
			body:      `{"token":"tok-201"}`,
			wantToken: "tok-201",
		},
		{
			name:        "401 unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":"bad credentials"}`,
			expectError: true,
		},
		{
			name:        "500 server error",
			status:      http.StatusInternalServerError,
			body:        "boom",
			expectError: true,
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        "not json",
			expectError: true,
		},
		{
			name:        "empty token",
			status:      http.StatusOK,
			body:        `{"token":""}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotContentType string
			var gotBody map[string]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotContentType = r.Header.Get("Content-Type")
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			token, err := New(srv.URL).Login(context.Background(), "ada", "s3cret")

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("Login() = %q, want %q", token, tt.wantToken)
			}
			if gotPath != "/api/login" {
				t.Errorf("request path = %q, want /api/login", gotPath)
			}
			if gotContentType != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", gotContentType)
			}
			if gotBody["username"] != "ada" || gotBody["password"] != "s3cret" {
				t.Errorf("request body = %v, want username/password fields", gotBody)
			}
		})
	}
}

func TestLoginUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if _, err := New(srv.URL).Login(context.Background(), "ada", "s3cret"); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
