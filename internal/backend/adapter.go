// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the MeetYourAI design service.
// It defines the API contract for authentication and design generation.
// The package includes both interface definitions and HTTP-based implementations.
package backend

import (
	"context"

	"github.com/MeetYourAI/AICoder/internal/design"
)

// API defines backend operations the client depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
type API interface {
	// Login exchanges credentials for an opaque session token.
	// The token is returned verbatim; callers attach it to design requests.
	Login(ctx context.Context, username, password string) (token string, err error)
	// GenerateDesign submits a source description and returns the recommended
	// schema. The token authorizes the call as a bearer credential.
	GenerateDesign(ctx context.Context, req design.SourceRequest, token string) (design.Recommendation, error)
}
