package session

import (
	"context"
	"time"
)

// Capability describes which part of the handler contract a delegate implements.
type Capability uint8

const (
	// CapabilityBasic means the delegate implements Handler only.
	CapabilityBasic Capability = iota
	// CapabilityExtended means the delegate implements TimestampHandler.
	CapabilityExtended
)

// String returns "basic" or "extended".
func (c Capability) String() string {
	if c == CapabilityExtended {
		return "extended"
	}
	return "basic"
}

// State is the activity state tracked by a Proxy.
type State uint8

const (
	// StateInactive is the initial state and the state after the session is closed.
	StateInactive State = iota
	// StateActive means the embedding storage has a running session.
	StateActive
)

// String returns "inactive" or "active".
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "inactive"
}

// Proxy forwards every call to the wrapped handler and keeps track of whether
// the session is active. The state is owned by the embedding storage: Open and
// Close never change it, only SetActive does.
//
// A Proxy is not safe for concurrent use; it serves one session lifecycle at a time.
type Proxy struct {
	handler    Handler
	extended   TimestampHandler
	capability Capability
	state      State
}

var (
	_ TimestampHandler = (*Proxy)(nil)
	_ NamedHandler     = (*Proxy)(nil)
)

// NewProxy wraps h. The capability of h is detected once here.
func NewProxy(h Handler) *Proxy {
	p := &Proxy{handler: h, capability: CapabilityBasic}
	if ext, ok := h.(TimestampHandler); ok {
		p.extended = ext
		p.capability = CapabilityExtended
	}
	return p
}

// Handler returns the wrapped handler.
func (p *Proxy) Handler() Handler {
	return p.handler
}

// Capability returns the capability detected at construction.
func (p *Proxy) Capability() Capability {
	return p.capability
}

// SaveHandlerName returns the wrapped handler's name, or "user" when it has none.
func (p *Proxy) SaveHandlerName() string {
	return saveHandlerName(p.handler)
}

// IsActive reports whether the embedding storage marked the session active.
func (p *Proxy) IsActive() bool {
	return p.state == StateActive
}

// State returns the current activity state.
func (p *Proxy) State() State {
	return p.state
}

// SetActive moves the proxy between StateInactive and StateActive.
func (p *Proxy) SetActive(active bool) {
	if active {
		p.state = StateActive
		return
	}
	p.state = StateInactive
}

// Open forwards to the wrapped handler. The activity state is left untouched.
func (p *Proxy) Open(ctx context.Context, savePath, name string) (bool, error) {
	return p.handler.Open(ctx, savePath, name)
}

// Close forwards to the wrapped handler. The activity state is left untouched.
func (p *Proxy) Close(ctx context.Context) (bool, error) {
	return p.handler.Close(ctx)
}

// Read forwards to the wrapped handler.
func (p *Proxy) Read(ctx context.Context, id string) (string, error) {
	return p.handler.Read(ctx, id)
}

// Write forwards to the wrapped handler.
func (p *Proxy) Write(ctx context.Context, id, data string) (bool, error) {
	return p.handler.Write(ctx, id, data)
}

// Destroy forwards to the wrapped handler.
func (p *Proxy) Destroy(ctx context.Context, id string) (bool, error) {
	return p.handler.Destroy(ctx, id)
}

// GC forwards to the wrapped handler and returns its count unchanged.
func (p *Proxy) GC(ctx context.Context, maxLifetime time.Duration) (int, error) {
	return p.handler.GC(ctx, maxLifetime)
}

// ValidateID forwards to an extended handler. Basic handlers cannot judge ids,
// so every id is accepted.
func (p *Proxy) ValidateID(ctx context.Context, id string) (bool, error) {
	if p.capability == CapabilityExtended {
		return p.extended.ValidateID(ctx, id)
	}
	return true, nil
}

// UpdateTimestamp forwards to an extended handler and falls back to Write otherwise.
func (p *Proxy) UpdateTimestamp(ctx context.Context, id, data string) (bool, error) {
	if p.capability == CapabilityExtended {
		return p.extended.UpdateTimestamp(ctx, id, data)
	}
	return p.handler.Write(ctx, id, data)
}
