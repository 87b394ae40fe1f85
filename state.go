package lineage

import "sync/atomic"

// State owns the live hierarchy. Exactly one hierarchy is live at a time and
// Publish is the only way to replace it.
type State struct {
	live atomic.Pointer[Hierarchy]
}

// Publish makes h the live hierarchy and returns the one it replaced.
// Publishing nil is ignored.
func (s *State) Publish(h *Hierarchy) *Hierarchy {
	if h == nil {
		return s.live.Load()
	}
	return s.live.Swap(h)
}

// Hierarchy returns the live hierarchy, or nil before the first successful fetch.
func (s *State) Hierarchy() *Hierarchy {
	return s.live.Load()
}

// Loaded reports whether any hierarchy has been published.
func (s *State) Loaded() bool {
	return s.live.Load() != nil
}
