// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package workflow

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/MeetYourAI/AICoder/internal/backend"
	"github.com/MeetYourAI/AICoder/internal/design"
	"github.com/MeetYourAI/AICoder/internal/diagram"
	"github.com/MeetYourAI/AICoder/internal/errors"
)

// One user-facing message per failure class. Bad credentials, an unreachable
// server and a malformed response all read the same; the distinction only
// exists in the debug log.
const (
	authFailedMessage   = "Login failed. Please check your credentials and try again."
	designFailedMessage = "Design generation failed. Please try again."
)

// ErrStaleResponse reports that a response arrived after the session it
// belonged to was ended; its result was discarded without touching state.
var ErrStaleResponse = stderrors.New("response discarded: session ended")

// Controller owns every piece of mutable session state: the session token,
// one request state per operation kind, the last recommendation with its
// diagram, and the current view. Network calls run outside the lock; each
// in-flight request remembers the session epoch it started under and its
// completion is dropped when a logout has bumped the epoch since.
type Controller struct {
	be backend.API

	mu             sync.Mutex
	view           View
	session        Session
	login          RequestState
	generate       RequestState
	recommendation *design.Recommendation
	diagram        string
	epoch          uint64
}

// NewController creates a logged-out controller backed by the given API.
func NewController(be backend.API) *Controller {
	return &Controller{be: be, view: ViewLoggedOut}
}

// Login exchanges credentials for a session. On success the session is
// established, the view switches to the design screen and any prior design
// result is cleared. On failure the session stays unauthenticated and the
// view stays on the login screen. A login already in flight rejects new
// attempts before any network traffic.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.mu.Lock()
	if c.login.Status == StatusInFlight {
		c.mu.Unlock()
		return errors.New(errors.RequestInFlight, "a login attempt is already running")
	}
	c.login = RequestState{Status: StatusInFlight}
	epoch := c.epoch
	c.mu.Unlock()

	token, err := c.be.Login(ctx, username, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		log.Debug().Msg("stale login response discarded")
		return ErrStaleResponse
	}
	if err != nil {
		c.login = RequestState{Status: StatusFailed, Message: authFailedMessage}
		return errors.Wrap(errors.AuthFailed, authFailedMessage, err)
	}

	c.session = Session{Authenticated: true, Token: token}
	c.login = RequestState{Status: StatusSucceeded}
	c.view = ViewLoggedIn
	// Switching views starts a fresh design screen
	c.generate = RequestState{}
	c.recommendation = nil
	c.diagram = ""
	log.Debug().Msg("session established")
	return nil
}

// GenerateDesign submits a source description under the current session and,
// on success, stores the recommendation together with its rendered diagram.
// On any failure a previous successful result stays displayed; it is only
// replaced by the next success. Requires an authenticated session and rejects
// the call before any network traffic otherwise.
func (c *Controller) GenerateDesign(ctx context.Context, req design.SourceRequest) error {
	c.mu.Lock()
	if !c.session.Authenticated {
		c.mu.Unlock()
		return errors.New(errors.NotAuthenticated, "please log in before requesting a design")
	}
	if c.generate.Status == StatusInFlight {
		c.mu.Unlock()
		return errors.New(errors.RequestInFlight, "a design request is already running")
	}
	c.generate = RequestState{Status: StatusInFlight}
	token := c.session.Token
	epoch := c.epoch
	c.mu.Unlock()

	rec, err := c.be.GenerateDesign(ctx, req, token)
	var rendered string
	if err == nil {
		// A 2xx body that fails validation counts as a generation failure
		if err = design.Validate(rec); err == nil {
			rendered = diagram.Mermaid(rec)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		log.Debug().Msg("stale design response discarded")
		return ErrStaleResponse
	}
	if err != nil {
		c.generate = RequestState{Status: StatusFailed, Message: designFailedMessage}
		return errors.Wrap(errors.DesignFailed, designFailedMessage, err)
	}

	c.generate = RequestState{Status: StatusSucceeded}
	c.recommendation = &rec
	c.diagram = rendered
	log.Debug().Int("tables", len(rec.Tables)).Msg("design result stored")
	return nil
}

// Logout unconditionally clears the session, the design result and both
// request states, and returns to the login view. No network call is made;
// responses still in flight become stale. Idempotent.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = Session{}
	c.login = RequestState{}
	c.generate = RequestState{}
	c.recommendation = nil
	c.diagram = ""
	c.view = ViewLoggedOut
	c.epoch++
	log.Debug().Msg("session cleared")
}

// View returns the current screen.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Session returns a snapshot of the current session.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// LoginState returns a snapshot of the login request lifecycle.
func (c *Controller) LoginState() RequestState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.login
}

// GenerateState returns a snapshot of the generation request lifecycle.
func (c *Controller) GenerateState() RequestState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generate
}

// Recommendation returns the last successful design result, if any.
func (c *Controller) Recommendation() (design.Recommendation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.recommendation == nil {
		return design.Recommendation{}, false
	}
	return *c.recommendation, true
}

// Diagram returns the rendered diagram of the last successful result, if any.
func (c *Controller) Diagram() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.recommendation == nil {
		return "", false
	}
	return c.diagram, true
}
