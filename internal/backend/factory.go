// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// New creates a backend API implementation for the given server.
// Returns HTTP client (real backend).
func New(baseURL string) API {
	return newHTTP(baseURL)
}
