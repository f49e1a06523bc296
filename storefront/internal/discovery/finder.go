package discovery

import (
	"context"
	"errors"
	"sync"

	"tiffin-finder/storefront/internal/model"

	"github.com/sirupsen/logrus"
)

// FallbackWarning is reported alongside the demo listing.
const FallbackWarning = "Could not load kitchens. Please try again."

// ErrSuperseded is returned by a search run replaced by a newer one.
var ErrSuperseded = errors.New("search superseded by a newer one")

// KitchenSource lists active, approved kitchens ordered by rating, best
// first.
type KitchenSource interface {
	NearbyKitchens(ctx context.Context) ([]model.Kitchen, error)
}

type Result struct {
	Kitchens []model.Kitchen
	Fallback bool
	Warning  string
}

type Finder struct {
	source   KitchenSource
	fallback []model.Kitchen
	log      logrus.FieldLogger
}

// NewFinder builds a Finder. When fallback is nil, backend failures are
// returned to the caller instead of being masked.
func NewFinder(source KitchenSource, fallback []model.Kitchen, log logrus.FieldLogger) *Finder {
	return &Finder{source: source, fallback: fallback, log: log}
}

func (f *Finder) Find(ctx context.Context, q Query) (*Result, error) {
	kitchens, err := f.source.NearbyKitchens(ctx)
	if err != nil {
		if ctx.Err() != nil || f.fallback == nil {
			return nil, err
		}
		f.log.WithError(err).Warn("loading kitchens failed, showing sample listing")
		return &Result{
			Kitchens: Matching(f.fallback, q),
			Fallback: true,
			Warning:  FallbackWarning,
		}, nil
	}
	return &Result{Kitchens: Filter(kitchens, q)}, nil
}

// Search runs finds one at a time. Starting a run cancels the one in
// flight, whose result is dropped.
type Search struct {
	finder *Finder

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewSearch(finder *Finder) *Search {
	return &Search{finder: finder}
}

func (s *Search) Run(ctx context.Context, q Query) (*Result, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	result, err := s.finder.Find(runCtx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return nil, ErrSuperseded
	}
	s.cancel = nil
	return result, err
}

// Cancel aborts the run in flight, if any.
func (s *Search) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}
