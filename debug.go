package lineage

import (
	"log/slog"
	"time"
)

// drawStats holds timing and size metrics for the last draw pass.
// Only populated when the renderer is in debug mode.
type drawStats struct {
	layoutTime time.Duration
	totalTime  time.Duration
	nodes      int
	links      int
	transform  ViewTransform
}

// debugLog reports the last pass at debug level.
func (r *Renderer) debugLog() {
	if !r.debug {
		return
	}
	s := r.stats
	r.logger.Debug("draw pass",
		slog.Duration("layout", s.layoutTime),
		slog.Duration("total", s.totalTime),
		slog.Int("nodes", s.nodes),
		slog.Int("links", s.links),
		slog.Float64("x", s.transform.X),
		slog.Float64("y", s.transform.Y),
		slog.Float64("k", s.transform.K),
	)
}

// debugMaxDepth is the depth beyond which a hierarchy is reported as unusually deep.
const debugMaxDepth = 32

// debugCheckHierarchy warns about hierarchies that will be slow or unreadable.
func debugCheckHierarchy(logger *slog.Logger, h *Hierarchy) {
	maxDepth := 0
	for _, p := range h.Descendants() {
		if p.Depth > maxDepth {
			maxDepth = p.Depth
		}
	}
	if maxDepth > debugMaxDepth {
		logger.Warn("tree depth exceeds threshold",
			slog.Int("depth", maxDepth), slog.Int("threshold", debugMaxDepth))
	}
}
