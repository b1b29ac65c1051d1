package dataset

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gyeh/facilitystats/internal/observability"
)

// State is the lifecycle of a Store: a dataset loads exactly once at
// startup; consumers observe loading until it settles into ready or error.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Store holds the single in-memory pipeline result handed to consumers. It
// replaces the implicit load-once provider of the upstream dashboard with an
// explicit state machine.
type Store struct {
	mu      sync.RWMutex
	state   State
	result  *Result
	loadErr error
	metrics *observability.Metrics
}

// NewStore returns a Store in the loading state. metrics may be nil.
func NewStore(metrics *observability.Metrics) *Store {
	return &Store{state: StateLoading, metrics: metrics}
}

// Load runs the pipeline and settles the store into ready or error. A
// subsequent Load discards the prior result wholesale.
func (s *Store) Load(log zerolog.Logger, sourceName, text string) error {
	res, err := Run(log, sourceName, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateError
		s.result = nil
		s.loadErr = err
		return err
	}
	s.state = StateReady
	s.result = res
	s.loadErr = nil

	if s.metrics != nil {
		s.metrics.DatasetLoads.Inc()
		s.metrics.RowsRead.Add(float64(res.Stats.RowsRead))
		s.metrics.FacilitiesBuilt.Add(float64(res.Stats.FacilitiesBuilt))
		s.metrics.LoadDuration.Observe(res.Stats.DurationTotal.Seconds())
	}
	return nil
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Result returns the loaded result, or an error while loading or failed.
func (s *Store) Result() (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateReady:
		return s.result, nil
	case StateError:
		return nil, s.loadErr
	}
	return nil, fmt.Errorf("dataset still loading")
}
