package gizmo

import rl "github.com/gen2brain/raylib-go/raylib"

// DragEvent is one pointer sample on a handle, already resolved by the
// host into a world-space point.
type DragEvent struct {
	Point  rl.Vector3
	Handle *Handle
}

// session lives from pointer-down to pointer-up on a handle.
type session struct {
	handle      *Handle
	start       rl.Vector3 // fixed for the session
	incremental rl.Vector3 // point of the previous move
	mode        Mode
}

func newSession(ev DragEvent) *session {
	return &session{
		handle:      ev.Handle,
		start:       ev.Point,
		incremental: ev.Point,
		mode:        ev.Handle.Role.Mode(),
	}
}

// advance hands back the baseline for the next delta and records point
// as the new baseline.
func (s *session) advance(point rl.Vector3) rl.Vector3 {
	prev := s.incremental
	s.incremental = point
	return prev
}
