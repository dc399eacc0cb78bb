package gizmo

import "errors"

var (
	// ErrNotAttachedToScene is returned by Update when the controls'
	// wrapper is not a grandchild of the scene root.
	ErrNotAttachedToScene = errors.New("freeform controls must be attached to the scene")

	ErrSessionActive  = errors.New("drag session already active")
	ErrNoSession      = errors.New("no active drag session")
	ErrHandleMismatch = errors.New("handle does not belong to the active drag session")
	ErrUnknownHandle  = errors.New("handle does not belong to these controls")

	// ErrUndoPending is returned by ProcessDragStart between Undo and the
	// Update that applies it.
	ErrUndoPending = errors.New("undo pending until the next update")
)
