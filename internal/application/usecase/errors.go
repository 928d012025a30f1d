package usecase

import "errors"

var (
	// ErrLastTab is returned when closing the only remaining tab.
	ErrLastTab = errors.New("cannot close the last tab")
	// ErrTabNotFound is returned for an unknown tab ID.
	ErrTabNotFound = errors.New("tab not found")
	// ErrNoActiveTab is returned when navigation has no target surface.
	ErrNoActiveTab = errors.New("no active tab")
	// ErrInvalidHomepageMode is returned for a homepage mode other than void, url or custom.
	ErrInvalidHomepageMode = errors.New("invalid homepage mode")
)
