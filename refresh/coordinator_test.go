package refresh_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	internalerrors "github.com/nyayasetu/go-legalaid/internal/errors"
	"github.com/nyayasetu/go-legalaid/refresh"
	"github.com/nyayasetu/go-legalaid/tokenstore"
	"github.com/nyayasetu/go-legalaid/tokenstore/storefakes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	waitTimeout  = time.Second
	pollInterval = 5 * time.Millisecond
)

// fakeExchanger counts exchanges and can be gated open so concurrent
// callers pile up behind a single in-flight exchange.
type fakeExchanger struct {
	calls       int32
	gate        chan struct{}
	accessToken string
	err         error
}

func (f *fakeExchanger) ExchangeRefreshToken(_ context.Context, refreshToken string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return "", f.err
	}
	return f.accessToken, nil
}

func (f *fakeExchanger) callCount() int32 {
	return atomic.LoadInt32(&f.calls)
}

func setupCoordinator(t *testing.T, exchanger refresh.Exchanger) (*refresh.Coordinator, *storefakes.FakeStore) {
	t.Helper()
	store := storefakes.NewFakeStore()
	require.NoError(t, store.Set(tokenstore.KeyRefreshToken, "R1"))
	coordinator, err := refresh.NewCoordinator(store, exchanger)
	require.NoError(t, err)
	return coordinator, store
}

func TestNewCoordinatorRequiresDependencies(t *testing.T) {
	_, err := refresh.NewCoordinator(nil, &fakeExchanger{})
	require.Error(t, err)

	_, err = refresh.NewCoordinator(storefakes.NewFakeStore(), nil)
	require.Error(t, err)
}

func TestRefreshStoresNewAccessToken(t *testing.T) {
	exchanger := &fakeExchanger{accessToken: "A2"}
	coordinator, store := setupCoordinator(t, exchanger)

	require.NoError(t, coordinator.Refresh(context.Background()))
	require.Equal(t, "A2", store.Get(tokenstore.KeyAccessToken))
	require.Equal(t, int32(1), exchanger.callCount())
	require.False(t, coordinator.Refreshing())
}

func TestRefreshWithoutRefreshTokenFailsWithoutExchange(t *testing.T) {
	exchanger := &fakeExchanger{accessToken: "A2"}
	store := storefakes.NewFakeStore()
	coordinator, err := refresh.NewCoordinator(store, exchanger)
	require.NoError(t, err)

	err = coordinator.Refresh(context.Background())
	require.ErrorIs(t, err, internalerrors.ErrNoRefreshToken)
	require.Equal(t, int32(0), exchanger.callCount())
}

func TestRefreshDoesNotClearTokensOnFailure(t *testing.T) {
	exchanger := &fakeExchanger{err: errors.New("boom")}
	coordinator, store := setupCoordinator(t, exchanger)
	require.NoError(t, store.Set(tokenstore.KeyAccessToken, "A1"))

	require.Error(t, coordinator.Refresh(context.Background()))
	// Clearing on failure is the call site's job, not the Coordinator's.
	require.Equal(t, "A1", store.Get(tokenstore.KeyAccessToken))
	require.Equal(t, "R1", store.Get(tokenstore.KeyRefreshToken))
}

func TestRefreshEmptyAccessTokenIsAFailure(t *testing.T) {
	exchanger := &fakeExchanger{accessToken: ""}
	coordinator, _ := setupCoordinator(t, exchanger)

	err := coordinator.Refresh(context.Background())
	require.ErrorIs(t, err, internalerrors.ErrMalformedResponse)
}

func TestConcurrentRefreshesShareOneExchange(t *testing.T) {
	const waiters = 10

	exchanger := &fakeExchanger{accessToken: "A2", gate: make(chan struct{})}
	coordinator, store := setupCoordinator(t, exchanger)

	var wg sync.WaitGroup
	results := make([]error, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = coordinator.Refresh(context.Background())
		}(i)
	}

	// Wait until the first caller is inside the exchange, then release.
	require.Eventually(t, coordinator.Refreshing, waitTimeout, pollInterval)
	close(exchanger.gate)
	wg.Wait()

	require.Equal(t, int32(1), exchanger.callCount())
	for i := 0; i < waiters; i++ {
		require.NoError(t, results[i])
	}
	require.Equal(t, "A2", store.Get(tokenstore.KeyAccessToken))
}

func TestConcurrentRefreshesAllFailTogether(t *testing.T) {
	const waiters = 5

	exchanger := &fakeExchanger{err: errors.New("backend rejected refresh"), gate: make(chan struct{})}
	coordinator, _ := setupCoordinator(t, exchanger)

	var wg sync.WaitGroup
	results := make([]error, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = coordinator.Refresh(context.Background())
		}(i)
	}

	require.Eventually(t, coordinator.Refreshing, waitTimeout, pollInterval)
	close(exchanger.gate)
	wg.Wait()

	require.Equal(t, int32(1), exchanger.callCount())
	for i := 0; i < waiters; i++ {
		require.Error(t, results[i])
	}
}

func TestSequentialRefreshesExchangeSeparately(t *testing.T) {
	exchanger := &fakeExchanger{accessToken: "A2"}
	coordinator, _ := setupCoordinator(t, exchanger)

	require.NoError(t, coordinator.Refresh(context.Background()))
	require.NoError(t, coordinator.Refresh(context.Background()))
	require.Equal(t, int32(2), exchanger.callCount())
}

func TestWaiterDetachesOnContextCancel(t *testing.T) {
	exchanger := &fakeExchanger{accessToken: "A2", gate: make(chan struct{})}
	coordinator, store := setupCoordinator(t, exchanger)

	started := make(chan struct{})
	finished := make(chan error, 1)
	go func() {
		close(started)
		finished <- coordinator.Refresh(context.Background())
	}()
	<-started
	require.Eventually(t, coordinator.Refreshing, waitTimeout, pollInterval)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := coordinator.Refresh(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The original exchange still completes for its own caller.
	close(exchanger.gate)
	require.NoError(t, <-finished)
	require.Equal(t, "A2", store.Get(tokenstore.KeyAccessToken))
}
