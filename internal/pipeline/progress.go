// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import "github.com/pdiddy/docsmith/pkg/types"

// progressTracker delivers progress events with a monotonic non-decreasing
// percentage. 100 is reserved for the terminal success transition.
type progressTracker struct {
	fn   types.ProgressFunc
	last int
}

func newProgress(fn types.ProgressFunc) *progressTracker {
	return &progressTracker{fn: fn}
}

// emit reports pct clamped to never regress and never reach 100 early.
func (p *progressTracker) emit(pct int, status string) {
	if pct < p.last {
		pct = p.last
	}
	if pct > 99 {
		pct = 99
	}
	p.last = pct
	if p.fn != nil {
		p.fn(pct, status)
	}
}

// span reports progress for unit i of n mapped into [start, end].
func (p *progressTracker) span(start, end, i, n int, status string) {
	if n <= 0 {
		p.emit(start, status)
		return
	}
	p.emit(start+(end-start)*i/n, status)
}

// done emits the terminal 100% event.
func (p *progressTracker) done(status string) {
	p.last = 100
	if p.fn != nil {
		p.fn(100, status)
	}
}
