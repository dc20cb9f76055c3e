// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/MeetYourAI/AICoder/internal/config"
	"github.com/MeetYourAI/AICoder/internal/design"
	"github.com/MeetYourAI/AICoder/internal/logging"
)

// generatePayload is the wire shape of a generation request. SourceConfig is
// a value, not a pointer: an empty config still serializes as "sourceConfig":{}
// with both path and url omitted.
type generatePayload struct {
	SourceType       design.SourceType   `json:"sourceType"`
	ConnectionString string              `json:"connectionString"`
	SourceConfig     design.SourceConfig `json:"sourceConfig"`
}

// GenerateDesign calls POST /api/generate-design with the source description
// and bearer token. The response is consumed as designRecommendations.tables;
// a 2xx body without that shape counts as a failure like any non-2xx status.
func (h *HTTP) GenerateDesign(ctx context.Context, req design.SourceRequest, token string) (design.Recommendation, error) {
	var rec design.Recommendation

	payload := generatePayload{
		SourceType:       req.SourceType,
		ConnectionString: req.ConnectionString,
		SourceConfig:     req.Config(),
	}
	resp, requestID, err := h.postJSON(ctx, config.GeneratePath, payload, token)
	if err != nil {
		log.Debug().Str("request_id", requestID).Str("cause", logging.Cause(err)).Msg("generate request failed")
		return rec, err
	}
	defer resp.Body.Close()

	log.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).Msg("generate response")

	if !is2xx(resp.StatusCode) {
		b, _ := io.ReadAll(resp.Body)
		return rec, fmt.Errorf("generate-design failed: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return rec, err
	}

	tables := gjson.GetBytes(body, "designRecommendations.tables")
	if !tables.Exists() || !tables.IsArray() {
		return rec, fmt.Errorf("malformed generate-design response: missing designRecommendations.tables")
	}
	if err := json.Unmarshal([]byte(gjson.GetBytes(body, "designRecommendations").Raw), &rec); err != nil {
		return rec, fmt.Errorf("malformed generate-design response: %w", err)
	}

	log.Debug().Str("request_id", requestID).Int("tables", len(rec.Tables)).Msg("design received")
	return rec, nil
}
