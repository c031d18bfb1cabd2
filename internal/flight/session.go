package flight

import (
	"context"
	"errors"
	"slices"
	"sync"

	"flightfinder/pkg/logger"
)

// Searcher runs one complete search. *Pipeline implements it.
type Searcher interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]Itinerary, error)
}

// State is what a results view renders.
type State struct {
	Flights []Itinerary `json:"flights"`
	Loading bool        `json:"loading"`
	Error   string      `json:"error,omitempty"`
	Reason  Reason      `json:"reason,omitempty"`
	Seq     uint64      `json:"seq"`
}

// ErrSessionClosed is returned by Submit after Close.
var ErrSessionClosed = errors.New("session closed")

type Option func(*Session)

// WithListener registers fn to receive every state change. Snapshots reach
// listeners in the order the changes were made, so a completion is never
// delivered after the loading state of a later submit. Listeners run with
// the session lock released but must not call Submit, Reset or Close.
func WithListener(fn func(State)) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, fn)
	}
}

// Session owns the displayed result set for one user. A submit supersedes
// any search still running, and only the completion carrying the latest
// sequence number is applied.
type Session struct {
	searcher  Searcher
	logger    logger.Logger
	listeners []func(State)

	mu     sync.Mutex
	seq    uint64
	state  State
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup

	// notifyMu is taken before mu is released so deliveries keep mutation order.
	notifyMu sync.Mutex
}

func NewSession(searcher Searcher, log logger.Logger, opts ...Option) *Session {
	s := &Session{
		searcher: searcher,
		logger:   log,
		state:    State{Flights: []Itinerary{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates criteria and starts a search in the background. It
// returns the sequence number assigned to the search.
func (s *Session) Submit(ctx context.Context, criteria SearchCriteria) (uint64, error) {
	if err := criteria.Validate(); err != nil {
		return 0, newSearchError(ReasonInvalidCriteria, "", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrSessionClosed
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	searchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.state.Loading = true
	s.state.Error = ""
	s.state.Reason = ""
	s.state.Seq = seq
	s.wg.Add(1)
	s.unlockAndNotify()

	go func() {
		defer s.wg.Done()
		defer cancel()
		itineraries, err := s.searcher.Search(searchCtx, criteria)
		s.complete(seq, itineraries, err)
	}()

	return seq, nil
}

func (s *Session) complete(seq uint64, itineraries []Itinerary, err error) {
	s.mu.Lock()
	if seq != s.seq {
		current := s.seq
		s.mu.Unlock()
		s.logger.Debug("dropping stale search result",
			logger.Field{Key: "seq", Value: seq},
			logger.Field{Key: "current_seq", Value: current},
		)
		return
	}

	s.cancel = nil
	s.state.Loading = false
	switch {
	case err == nil:
		s.state.Flights = itineraries
	case errors.Is(err, context.Canceled):
		// Closed while running; keep the last result set.
	default:
		s.state.Flights = []Itinerary{}
		s.state.Error = UserMessage(err)
		s.state.Reason = ReasonOf(err)
	}
	s.unlockAndNotify()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// View returns the current state with its flights sorted by key.
func (s *Session) View(key SortKey) (State, error) {
	state := s.Snapshot()
	sorted, err := Sort(state.Flights, key)
	if err != nil {
		return State{}, err
	}
	state.Flights = sorted
	return state, nil
}

// Reset clears the state and invalidates any search still running.
func (s *Session) Reset() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	s.state = State{Flights: []Itinerary{}, Seq: s.seq}
	s.unlockAndNotify()
}

// Close cancels the running search and waits for its goroutine to exit.
// Later submits fail with ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Session) snapshotLocked() State {
	state := s.state
	state.Flights = slices.Clone(s.state.Flights)
	if state.Flights == nil {
		state.Flights = []Itinerary{}
	}
	return state
}

// unlockAndNotify releases mu, which the caller holds, and hands the current
// snapshot to the listeners.
func (s *Session) unlockAndNotify() {
	snapshot := s.snapshotLocked()
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, fn := range s.listeners {
		fn(snapshot)
	}
}
