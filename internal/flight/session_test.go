package flight

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"flightfinder/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitIdle(t *testing.T, s *Session, seq uint64) State {
	t.Helper()
	var state State
	require.Eventually(t, func() bool {
		state = s.Snapshot()
		return state.Seq == seq && !state.Loading
	}, 2*time.Second, 5*time.Millisecond)
	return state
}

func TestSession_Submit_AppliesResult(t *testing.T) {
	results := []Itinerary{itinerary("a", 120, 90)}
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		return results, nil
	}), logger.NewNop())
	defer s.Close()

	seq, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)

	state := waitIdle(t, s, seq)
	assert.Equal(t, results, state.Flights)
	assert.Empty(t, state.Error)
}

func TestSession_Submit_RejectsInvalidCriteria(t *testing.T) {
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		t.Fatal("search must not run")
		return nil, nil
	}), logger.NewNop())

	criteria := testCriteria()
	criteria.Passengers = 10

	_, err := s.Submit(context.Background(), criteria)

	assert.Equal(t, ReasonInvalidCriteria, ReasonOf(err))
	assert.Equal(t, MessageInvalidCriteria, UserMessage(err))
	assert.False(t, s.Snapshot().Loading)
}

func TestSession_LastSubmissionWins(t *testing.T) {
	first := []Itinerary{itinerary("stale", 1, 60)}
	second := []Itinerary{itinerary("fresh", 2, 60)}
	releaseFirst := make(chan struct{})

	s := NewSession(searchFunc(func(_ context.Context, c SearchCriteria) ([]Itinerary, error) {
		if c.Destination == "London" {
			// ignores cancellation and answers late
			<-releaseFirst
			return first, nil
		}
		return second, nil
	}), logger.NewNop())

	_, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)

	criteria := testCriteria()
	criteria.Destination = "New York"
	seq, err := s.Submit(context.Background(), criteria)
	require.NoError(t, err)

	waitIdle(t, s, seq)
	close(releaseFirst)
	s.Close()

	state := s.Snapshot()
	assert.Equal(t, seq, state.Seq)
	assert.Equal(t, []string{"fresh"}, ids(state.Flights))
}

func TestSession_SubmitCancelsSupersededSearch(t *testing.T) {
	cancelled := make(chan struct{})
	s := NewSession(searchFunc(func(ctx context.Context, c SearchCriteria) ([]Itinerary, error) {
		if c.Destination == "London" {
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}
		return []Itinerary{itinerary("b", 1, 1)}, nil
	}), logger.NewNop())
	defer s.Close()

	_, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)

	criteria := testCriteria()
	criteria.Destination = "Paris"
	_, err = s.Submit(context.Background(), criteria)
	require.NoError(t, err)

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded search still running")
	}
}

func TestSession_SubmitOutlivesRequestContext(t *testing.T) {
	s := NewSession(searchFunc(func(ctx context.Context, _ SearchCriteria) ([]Itinerary, error) {
		time.Sleep(20 * time.Millisecond)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []Itinerary{itinerary("a", 1, 1)}, nil
	}), logger.NewNop())
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	seq, err := s.Submit(ctx, testCriteria())
	require.NoError(t, err)
	cancel()

	state := waitIdle(t, s, seq)
	assert.Len(t, state.Flights, 1)
}

func TestSession_FailureClearsFlightsAndSetsMessage(t *testing.T) {
	fail := false
	var mu sync.Mutex
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return nil, newSearchError(ReasonNoResults, "", ErrNoResults)
		}
		return []Itinerary{itinerary("a", 1, 1)}, nil
	}), logger.NewNop())
	defer s.Close()

	seq, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)
	assert.Len(t, waitIdle(t, s, seq).Flights, 1)

	mu.Lock()
	fail = true
	mu.Unlock()

	seq, err = s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)
	state := waitIdle(t, s, seq)

	assert.Empty(t, state.Flights)
	assert.Equal(t, MessageNoResults, state.Error)
	assert.Equal(t, ReasonNoResults, state.Reason)
}

func TestSession_UpstreamErrorUsesGenericMessage(t *testing.T) {
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		return nil, newSearchError(ReasonAirportNotFound, "Atlantis", ErrAirportNotFound)
	}), logger.NewNop())
	defer s.Close()

	seq, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)
	state := waitIdle(t, s, seq)

	assert.Equal(t, MessageSearchFailed, state.Error)
	assert.Equal(t, ReasonAirportNotFound, state.Reason)
}

func TestSession_ViewSortsCopy(t *testing.T) {
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		return []Itinerary{itinerary("a", 300, 60), itinerary("b", 100, 60)}, nil
	}), logger.NewNop())
	defer s.Close()

	seq, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)
	waitIdle(t, s, seq)

	view, err := s.View(SortPriceAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(view.Flights))
	assert.Equal(t, []string{"a", "b"}, ids(s.Snapshot().Flights))
}

func TestSession_ResetDropsInFlightResult(t *testing.T) {
	release := make(chan struct{})
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		<-release
		return []Itinerary{itinerary("late", 1, 1)}, nil
	}), logger.NewNop())

	_, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)
	s.Reset()
	close(release)
	s.Close()

	state := s.Snapshot()
	assert.Empty(t, state.Flights)
	assert.False(t, state.Loading)
}

func TestSession_ListenerSeesLoadingThenResult(t *testing.T) {
	var mu sync.Mutex
	var seen []State
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		return nil, errors.New("boom")
	}), logger.NewNop(), WithListener(func(st State) {
		mu.Lock()
		seen = append(seen, st)
		mu.Unlock()
	}))

	_, err := s.Submit(context.Background(), testCriteria())
	require.NoError(t, err)
	s.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.True(t, seen[0].Loading)
	assert.False(t, seen[1].Loading)
	assert.Equal(t, MessageSearchFailed, seen[1].Error)
}

func TestSession_SubmitAfterCloseFails(t *testing.T) {
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		t.Fatal("search must not run")
		return nil, nil
	}), logger.NewNop())
	s.Close()

	_, err := s.Submit(context.Background(), testCriteria())

	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.False(t, s.Snapshot().Loading)
}

func TestSession_ConcurrentSubmitAndClose(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := NewSession(searchFunc(func(ctx context.Context, _ SearchCriteria) ([]Itinerary, error) {
			return []Itinerary{itinerary("a", 1, 1)}, nil
		}), logger.NewNop())

		var wg sync.WaitGroup
		for j := 0; j < 4; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Submit(context.Background(), testCriteria())
				if err != nil {
					assert.ErrorIs(t, err, ErrSessionClosed)
				}
			}()
		}
		s.Close()
		wg.Wait()

		_, err := s.Submit(context.Background(), testCriteria())
		require.ErrorIs(t, err, ErrSessionClosed)
	}
}

func TestSession_ListenerSeesChangesInOrder(t *testing.T) {
	var mu sync.Mutex
	var seqs []uint64
	s := NewSession(searchFunc(func(context.Context, SearchCriteria) ([]Itinerary, error) {
		return []Itinerary{itinerary("a", 1, 1)}, nil
	}), logger.NewNop(), WithListener(func(st State) {
		mu.Lock()
		seqs = append(seqs, st.Seq)
		mu.Unlock()
	}))

	var last uint64
	for i := 0; i < 50; i++ {
		seq, err := s.Submit(context.Background(), testCriteria())
		require.NoError(t, err)
		last = seq
	}
	waitIdle(t, s, last)
	s.Close()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seqs)
	for i := 1; i < len(seqs); i++ {
		assert.LessOrEqual(t, seqs[i-1], seqs[i], "delivery %d went backwards", i)
	}
	assert.Equal(t, last, seqs[len(seqs)-1])
}
