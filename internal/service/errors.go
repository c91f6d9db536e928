package service

import "errors"

var (
	// ErrNoRunningTimer is returned by stop/pause/update operations when
	// the user has no open entry. A second stop in a row reports this
	// rather than silently succeeding, so callers can tell "already
	// stopped" apart from "stopped successfully".
	ErrNoRunningTimer = errors.New("no running timer")

	// ErrForbidden is returned when an entity exists but belongs to a
	// different user.
	ErrForbidden = errors.New("not authorized")

	// ErrInvalidRange is returned when a reporting range ends before it
	// starts.
	ErrInvalidRange = errors.New("end date precedes start date")
)
