package web

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inovacc/repogallery/internal/derive"
	"github.com/inovacc/repogallery/internal/gallery"
	"github.com/inovacc/repogallery/internal/model"
)

// session is the server's single gallery session. A reload bumps the
// generation; results of older loads are dropped.
type session struct {
	mu         sync.RWMutex
	owner      string
	generation int
	phase      gallery.Phase
	problem    gallery.Problem
	records    []model.Repository
	languages  []string
	loadedAt   time.Time
	cancel     context.CancelFunc
}

// snapshot is a consistent read of the session
type snapshot struct {
	generation int
	phase      gallery.Phase
	problem    gallery.Problem
	records    []model.Repository
	languages  []string
	loadedAt   time.Time
}

func (s *session) read() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot{
		generation: s.generation,
		phase:      s.phase,
		problem:    s.problem,
		records:    s.records,
		languages:  s.languages,
		loadedAt:   s.loadedAt,
	}
}

// reload resets the session to loading and starts one loader run. It
// reports false when a load is already running.
func (s *Server) reload() bool {
	s.session.mu.Lock()

	if s.session.phase == gallery.PhaseLoading && s.session.cancel != nil {
		s.session.mu.Unlock()
		return false
	}

	if s.baseCtx.Err() != nil {
		s.session.mu.Unlock()
		return false
	}

	ctx, cancel := context.WithCancel(s.baseCtx)

	s.session.generation++
	s.session.phase = gallery.PhaseLoading
	s.session.problem = gallery.Problem{}
	s.session.records = nil
	s.session.languages = nil
	s.session.loadedAt = time.Time{}
	s.session.cancel = cancel

	generation := s.session.generation
	owner := s.session.owner

	s.loads.Add(1)
	s.session.mu.Unlock()

	s.cache.Clear()

	s.logger.Info("loading repositories", slog.String("owner", owner), slog.Int("generation", generation))

	go func() {
		defer s.loads.Done()
		defer cancel()

		records, err := s.source.LoadAll(ctx, owner)
		s.finish(generation, records, err)
	}()

	return true
}

func (s *Server) finish(generation int, records []model.Repository, err error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if generation != s.session.generation {
		return
	}

	s.session.cancel = nil
	s.session.phase, s.session.problem = gallery.Classify(s.session.owner, records, err)

	if s.session.phase != gallery.PhaseReady {
		s.logger.Warn("gallery has nothing to show",
			slog.String("owner", s.session.owner),
			slog.String("problem", s.session.problem.Title),
		)

		return
	}

	s.session.records = records
	s.session.languages = derive.DistinctLanguages(records)
	s.session.loadedAt = time.Now()

	s.logger.Info("gallery ready", slog.String("owner", s.session.owner), slog.Int("count", len(records)))
}

// project returns the view for state, memoized per generation and filter
func (s *Server) project(snap snapshot, state gallery.State) []model.Repository {
	f := state.Filter()
	key := fmt.Sprintf("%d|%t|%s|%s", snap.generation, f.HideForks, f.Sort, f.Language)

	if view, ok := s.cache.Get(key); ok {
		return view
	}

	view := derive.ProjectView(snap.records, f)
	s.cache.Set(key, view, int64(len(view))+1)

	return view
}
