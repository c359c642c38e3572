// SPDX-License-Identifier: MIT

package view

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Session issues view ids for one inspected model. Ids start at 1 and are
// never reused within a session. A Session is safe for concurrent use.
type Session struct {
	id   uuid.UUID
	last atomic.Int64
}

// NewSession starts a session with a fresh random id.
func NewSession() *Session {
	return &Session{id: uuid.New()}
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// NextViewID returns the next unused view id.
func (s *Session) NextViewID() int { return int(s.last.Add(1)) }

// NewConfig returns a Config of type t under a new id. Scaling views default
// to absolute values.
func (s *Session) NewConfig(t Type) *Config {
	return &Config{
		ID:                s.NextViewID(),
		Type:              t,
		Title:             t.String(),
		Session:           s.id,
		UseAbsoluteValues: t == Scaling,
	}
}

// Clone copies c under a new id of this session.
func (s *Session) Clone(c *Config) *Config {
	if c == nil {
		return nil
	}
	cp := c.Clone(s.NextViewID())
	cp.Session = s.id

	return cp
}
