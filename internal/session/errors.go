package session

import "errors"

var (
	// ErrLookup reports a non-empty letter code missing from the letters
	// table, or an empty code inside a word.
	ErrLookup = errors.New("session: letter lookup failed")

	// ErrUninitialized reports a resolution request before a letters table
	// was bound.
	ErrUninitialized = errors.New("session: letters table not bound")

	// ErrTripletIndex reports a triplet index outside the fixed sequence.
	ErrTripletIndex = errors.New("session: triplet index out of range")

	// ErrEngineStep wraps a failure returned by the engine's Step.
	ErrEngineStep = errors.New("session: engine step failed")

	// ErrStopped is returned by Advance after Stop.
	ErrStopped = errors.New("session: driver stopped")
)
