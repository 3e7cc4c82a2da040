// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"sync"

	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// recentRuns holds the last few runs by ID, evicting the oldest first.
type recentRuns struct {
	mu    sync.Mutex
	limit int
	order []string
	runs  map[string]types.Run
}

func newRecentRuns(limit int) *recentRuns {
	return &recentRuns{limit: limit, runs: make(map[string]types.Run)}
}

func (r *recentRuns) put(run types.Run) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runs[run.ID]; !ok {
		r.order = append(r.order, run.ID)
	}
	r.runs[run.ID] = run
	for len(r.order) > r.limit {
		delete(r.runs, r.order[0])
		r.order = r.order[1:]
	}
}

func (r *recentRuns) get(id string) (types.Run, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	return run, ok
}
