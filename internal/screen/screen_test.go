package screen

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoad_OverlappingCallsShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	var published atomic.Int32

	l := NewLoader("recs", func(ctx context.Context) ([]int, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return []int{1, 2}, nil
	}, func(data []int, err error) { published.Add(1) }, nil)

	var wg sync.WaitGroup
	results := make([][]int, 3)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = l.Load(context.Background())
	}()
	<-started
	assert.True(t, l.InFlight())
	for i := 1; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = l.Load(context.Background())
		}(i)
	}
	// give the joiners time to reach the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), published.Load())
	for _, r := range results {
		assert.Equal(t, []int{1, 2}, r)
	}
	assert.False(t, l.InFlight())
}

func TestLoad_SequentialCallsFetchAgain(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader("alerts", func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}, func(int, error) {}, nil)

	first, err := l.Load(context.Background())
	require.NoError(t, err)
	second, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestDetach_LateResultIsDropped(t *testing.T) {
	release := make(chan struct{})
	var published atomic.Bool
	l := NewLoader("wearables", func(ctx context.Context) (string, error) {
		<-release
		return "late", nil
	}, func(string, error) { published.Store(true) }, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		got, err := l.Load(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "late", got)
	}()
	l.Detach()
	assert.False(t, l.Attached())
	close(release)
	<-done

	assert.False(t, published.Load())
}

func TestMutate_CompletesBeforeReload(t *testing.T) {
	var mu sync.Mutex
	var events []string
	record := func(e string) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	}

	l := NewLoader("assessments", func(ctx context.Context) (int, error) {
		record("reload")
		return 0, nil
	}, func(int, error) {}, nil)

	err := l.Mutate(context.Background(), func(ctx context.Context) error {
		time.Sleep(10 * time.Millisecond)
		record("mutation done")
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = l.Mutate(context.Background(), func(ctx context.Context) error {
		record("mutation failed")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"mutation done", "reload", "mutation failed", "reload"}, events)
}

func TestMutate_ReloadDoesNotJoinEarlierFetch(t *testing.T) {
	var server atomic.Int32
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	var published []int32
	l := NewLoader("recs", func(ctx context.Context) (int32, error) {
		v := server.Load()
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return v, nil
	}, func(v int32, err error) {
		mu.Lock()
		published = append(published, v)
		mu.Unlock()
	}, nil)

	done := make(chan int32)
	go func() {
		v, _ := l.Load(context.Background())
		done <- v
	}()
	<-started

	err := l.Mutate(context.Background(), func(ctx context.Context) error {
		server.Store(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())

	close(release)
	assert.Equal(t, int32(0), <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int32{1}, published)
}

func TestLoad_CancelledCallerDoesNotFailJoiners(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	l := NewLoader("alerts", func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		select {
		case <-release:
			return "ok", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}, func(string, error) {}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error)
	go func() {
		_, err := l.Load(ctx)
		first <- err
	}()
	<-started

	second := make(chan string)
	go func() {
		v, err := l.Load(context.Background())
		assert.NoError(t, err)
		second <- v
	}()
	// let the second caller join the in-flight fetch
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(release)
	assert.Equal(t, "ok", <-second)
	assert.Equal(t, int32(1), calls.Load())
}

type fakeSource struct {
	err error
}

func (f fakeSource) ListSelfAssessments(ctx context.Context) ([]internal.SelfAssessment, error) {
	return []internal.SelfAssessment{
		{ID: 1, Date: internal.NewDate(2024, 6, 1), Mood: 4},
		{ID: 2, Date: internal.NewDate(2024, 6, 2), Mood: 6},
	}, nil
}

func (f fakeSource) ListRecommendations(ctx context.Context) ([]internal.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []internal.Recommendation{{ID: 1}, {ID: 2, Consumed: true}}, nil
}

func (f fakeSource) ListWearableReadings(ctx context.Context) ([]internal.WearableReading, error) {
	return []internal.WearableReading{{ID: 1, Steps: 100}}, nil
}

func TestLoadDashboard(t *testing.T) {
	s, err := LoadDashboard(context.Background(), fakeSource{})
	require.NoError(t, err)
	assert.Equal(t, "5.0", s.Averages[aggregate.ScoreMood].String())
	assert.Equal(t, 2, s.Evolution[aggregate.ScoreMood])
	assert.Equal(t, 1, s.PendingCount)

	boom := errors.New("recs down")
	_, err = LoadDashboard(context.Background(), fakeSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestDashboardLoader(t *testing.T) {
	var got aggregate.Summary
	l := NewDashboardLoader(fakeSource{}, func(s aggregate.Summary, err error) { got = s }, internal.NopLogger())
	_, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.PendingCount)
}
