package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MeetYourAI/AICoder/internal/config"
	"github.com/MeetYourAI/AICoder/internal/logging"
)

// Login calls POST /api/login with { username, password }.
// Any non-2xx status is an authentication failure; the status detail stays in
// the returned error for debug logging only.
func (h *HTTP) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	resp, requestID, err := h.postJSON(ctx, config.LoginPath, payload, "")
	if err != nil {
		log.Debug().Str("request_id", requestID).Str("cause", logging.Cause(err)).Msg("login request failed")
		return "", err
	}
	defer resp.Body.Close()

	log.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).Msg("login response")

	if !is2xx(resp.StatusCode) {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("empty token in login response")
	}
	return out.Token, nil
}
