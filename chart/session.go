/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import (
	"sync"

	"github.com/google/uuid"
)

// Session owns at most one current rendering at a time. Applying a new
// rendering discards the previous one in full; callers never observe a
// half-replaced chart.
//
// Begin hands out a token per load request. Apply only accepts the most
// recently issued token, so a stale in-flight load cannot clobber a newer
// selection even when fetches overlap.
type Session struct {
	mu     sync.Mutex
	latest string
	points []Point
}

// NewSession returns an empty rendering session.
func NewSession() *Session {
	return &Session{}
}

// Begin registers a new load request and returns its token. Any token
// issued earlier is superseded immediately.
func (s *Session) Begin() string {
	token := uuid.NewString()

	s.mu.Lock()
	s.latest = token
	s.mu.Unlock()

	return token
}

// Apply replaces the current rendering with the given points, provided the
// token is still the latest one. It reports whether the rendering applied.
func (s *Session) Apply(token string, points []Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.latest {
		return false
	}

	s.points = append([]Point(nil), points...)
	return true
}

// Current returns a copy of the current rendering.
func (s *Session) Current() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Point(nil), s.points...)
}
