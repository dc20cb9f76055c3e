// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

// Cause classifies a transport-level error for debug logging. The user-facing
// message never carries this detail; it exists so a --verbose run can tell a
// timeout from a refused connection.
func Cause(err error) string {
	if err == nil {
		return ""
	}
	if isTimeout(err) {
		return "timeout"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns"
	}
	if isConnectionRefused(err) {
		return "connection_refused"
	}
	if isTLS(err) {
		return "tls"
	}
	return "other"
}

// isTimeout checks if the error is a timeout error.
func isTimeout(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isConnectionRefused checks if the error is a connection refused error.
func isConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isTLS checks if the error is an SSL/TLS error.
func isTLS(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "ssl") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}
