package refresh

import (
	"context"
	"sync"

	internalerrors "github.com/nyayasetu/go-legalaid/internal/errors"
	"github.com/nyayasetu/go-legalaid/tokenstore"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Exchanger performs the token exchange against the backend's refresh
// endpoint, trading a refresh token for a new access token.
type Exchanger interface {
	ExchangeRefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
}

// flight is one in-progress exchange. Waiters block on done and then
// read err, which is written exactly once before done is closed.
type flight struct {
	done chan struct{}
	err  error
}

// Coordinator serializes refresh attempts. While an exchange is in
// flight every additional caller attaches to it and shares its
// outcome, so N concurrent expiries produce a single exchange. On
// success the new access token is written to the token store. The
// Coordinator never clears tokens on failure; that decision belongs to
// the call site.
type Coordinator struct {
	store     tokenstore.Store
	exchanger Exchanger

	lock     sync.Mutex
	inFlight *flight
}

// NewCoordinator initializes a Coordinator with required dependencies.
func NewCoordinator(store tokenstore.Store, exchanger Exchanger) (*Coordinator, error) {
	if store == nil {
		return nil, errors.New("[NewCoordinator] store is required")
	}
	if exchanger == nil {
		return nil, errors.New("[NewCoordinator] exchanger is required")
	}
	return &Coordinator{store: store, exchanger: exchanger}, nil
}

// Refresh obtains a fresh access token, joining the in-flight exchange
// when one exists. The returned error is shared by every caller that
// attached to the same exchange. A caller whose context expires while
// waiting detaches with ctx.Err(); the exchange itself carries on for
// the remaining waiters.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.lock.Lock()
	if f := c.inFlight; f != nil {
		c.lock.Unlock()
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f := &flight{done: make(chan struct{})}
	c.inFlight = f
	c.lock.Unlock()

	log.Debug().Msg("token refresh started")
	f.err = c.exchange(ctx)

	c.lock.Lock()
	c.inFlight = nil
	c.lock.Unlock()
	close(f.done)

	if f.err != nil {
		log.Debug().Err(f.err).Msg("token refresh failed")
	} else {
		log.Debug().Msg("token refresh succeeded")
	}
	return f.err
}

// Refreshing reports whether an exchange is currently in flight.
func (c *Coordinator) Refreshing() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.inFlight != nil
}

func (c *Coordinator) exchange(ctx context.Context) error {
	refreshToken := c.store.Get(tokenstore.KeyRefreshToken)
	if refreshToken == "" {
		// No credential to exchange; fail without a network call.
		return internalerrors.ErrNoRefreshToken
	}

	accessToken, err := c.exchanger.ExchangeRefreshToken(ctx, refreshToken)
	if err != nil {
		return errors.Wrap(err, "token refresh failed")
	}
	if accessToken == "" {
		return internalerrors.Wrapf(internalerrors.ErrMalformedResponse, "token refresh failed")
	}

	if err := c.store.Set(tokenstore.KeyAccessToken, accessToken); err != nil {
		return errors.Wrap(err, "error storing refreshed access token")
	}
	return nil
}
