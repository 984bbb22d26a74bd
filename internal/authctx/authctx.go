// Package authctx exposes the session store to the rendering layer as
// process-wide state with an explicit lifecycle. Init installs the store
// when the root of the application comes up; Teardown discards it on exit.
// Touching the context outside that window is a programming error and
// panics rather than handing out an indeterminate auth state.
package authctx

import (
	"sync"

	"github.com/buildflow/client/internal/core/ports"
)

var (
	mu      sync.Mutex
	current ports.SessionService
)

// Init installs the session service. Panics when called twice without an
// intervening Teardown; two owners of the session is always a wiring bug.
func Init(svc ports.SessionService) {
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		panic("authctx: Init called twice")
	}
	if svc == nil {
		panic("authctx: Init with nil session service")
	}
	current = svc
}

// Use returns the installed session service. Panics before Init or after
// Teardown so no caller can render against a session that does not exist.
func Use() ports.SessionService {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		panic("authctx: Use called outside the Init/Teardown lifecycle")
	}
	return current
}

// Teardown discards the installed service. Further Use calls panic until
// the next Init. Safe to call when nothing is installed.
func Teardown() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}
