package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nyayasetu/go-legalaid/apiclient"
	internalerrors "github.com/nyayasetu/go-legalaid/internal/errors"
	"github.com/nyayasetu/go-legalaid/token"
	"github.com/nyayasetu/go-legalaid/tokenstore"
	"github.com/nyayasetu/go-legalaid/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// APIClient is the slice of apiclient.Client the Manager needs.
type APIClient interface {
	ExecuteRequest(ctx context.Context, req apiclient.Request) error
}

// ProfileUpdate carries partial profile changes; nil fields are left
// untouched.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// RegisterInput is the profile data submitted at registration.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

// Manager is the application-facing authentication API: the only
// component that mutates the observable session state. It persists the
// profile snapshot through a StateRepo and the tokens through the
// token store; the two are stored apart so they can be purged
// independently.
type Manager struct {
	client APIClient
	tokens tokenstore.Store
	states StateRepo

	// onLoginRequired runs when the session dies out from under the
	// user (refresh failure); the UI hooks its login navigation here.
	onLoginRequired func()

	lock  sync.RWMutex
	state State
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithLoginRedirect registers the navigation hook invoked when the
// session is torn down by a refresh failure.
func WithLoginRedirect(redirect func()) ManagerOption {
	return func(m *Manager) {
		m.onLoginRequired = redirect
	}
}

// NewManager initializes a Manager with required dependencies.
func NewManager(client APIClient, tokens tokenstore.Store, states StateRepo, options ...ManagerOption) (*Manager, error) {
	if client == nil {
		return nil, errors.New("[NewManager] client is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewManager] tokens store is required")
	}
	if states == nil {
		return nil, errors.New("[NewManager] states repo is required")
	}

	manager := &Manager{
		client: client,
		tokens: tokens,
		states: states,
	}
	for _, opt := range options {
		opt(manager)
	}
	return manager, nil
}

// Login authenticates against the backend and replaces the session
// wholesale on success. All backend rejections surface as the uniform
// invalid-credentials error; the backend's detail about which field
// was wrong is intentionally not echoed.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	respObj := authResponse{}
	err := m.client.ExecuteRequest(ctx, apiclient.Request{
		Method:     http.MethodPost,
		Path:       "/users/login/",
		ReqBodyObj: loginRequest{Email: email, Password: password},
		RespObj:    &respObj,
	})
	if err != nil {
		apiErr := &apiclient.APIError{}
		if errors.As(err, &apiErr) {
			return internalerrors.ErrInvalidCredentials
		}
		return err
	}

	if err := m.establish(respObj); err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("login succeeded")
	return nil
}

// Register creates an account; the backend returns tokens and profile
// directly, so a successful registration is also a login.
func (m *Manager) Register(ctx context.Context, input RegisterInput) error {
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	if err := validatePhoneNumber(input.PhoneNumber); err != nil {
		return err
	}
	if err := users.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	respObj := authResponse{}
	err := m.client.ExecuteRequest(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/users/register/",
		ReqBodyObj: registerRequest{
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Password:    input.Password,
		},
		SuccessCode: http.StatusCreated,
		RespObj:     &respObj,
	})
	if err != nil {
		return errors.Wrap(err, "registration failed")
	}

	if err := m.establish(respObj); err != nil {
		return err
	}
	log.Info().Str("email", input.Email).Msg("registration succeeded")
	return nil
}

// SendOTP asks the backend to email a one-time code. It does not
// mutate the session. The backend answers success-shaped regardless of
// whether the account exists, so neither can this call reveal that.
func (m *Manager) SendOTP(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	return m.client.ExecuteRequest(ctx, apiclient.Request{
		Method:     http.MethodPost,
		Path:       "/users/send-otp/",
		ReqBodyObj: emailRequest{Email: email},
	})
}

// VerifyOTP checks a one-time code. It does not mutate the session.
func (m *Manager) VerifyOTP(ctx context.Context, email, otp string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validateOTP(otp); err != nil {
		return err
	}
	err := m.client.ExecuteRequest(ctx, apiclient.Request{
		Method:     http.MethodPost,
		Path:       "/users/verify-otp/",
		ReqBodyObj: verifyOTPRequest{Email: email, OTP: otp},
	})
	if err != nil {
		apiErr := &apiclient.APIError{}
		if errors.As(err, &apiErr) {
			return internalerrors.Wrapf(internalerrors.ErrOTPRejected, "otp verification failed")
		}
		return err
	}
	return nil
}

// CheckEmailPhone probes availability before registration. Conflicts
// come back as *FieldErrors so the UI can annotate the specific input.
func (m *Manager) CheckEmailPhone(ctx context.Context, email, phone string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePhoneNumber(phone); err != nil {
		return err
	}
	err := m.client.ExecuteRequest(ctx, apiclient.Request{
		Method:     http.MethodPost,
		Path:       "/users/check-email-phone/",
		ReqBodyObj: checkEmailPhoneRequest{Email: email, PhoneNumber: phone},
	})
	if err != nil {
		apiErr := &apiclient.APIError{}
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			if fieldErrors := decodeFieldErrors(apiErr.Body); fieldErrors != nil {
				return fieldErrors
			}
		}
		return err
	}
	return nil
}

// ResetPassword completes the OTP-verified password reset flow.
func (m *Manager) ResetPassword(ctx context.Context, email, newPassword string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := users.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	return m.client.ExecuteRequest(ctx, apiclient.Request{
		Method:     http.MethodPost,
		Path:       "/users/reset-password/",
		ReqBodyObj: resetPasswordRequest{Email: email, NewPassword: newPassword},
	})
}

// Logout clears the token store and resets the session to empty,
// unconditionally and without a network call. Safe to call when
// already logged out.
func (m *Manager) Logout() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.teardownLocked()
}

// CheckAuth re-derives the authentication flag from persisted state at
// boot: authenticated iff an access token and a profile snapshot are
// both present. It trusts persisted state without contacting the
// backend; the first API call proves it stale if it is, and the 401
// flow takes over from there.
func (m *Manager) CheckAuth() (bool, error) {
	persisted, err := m.states.Load()
	if err != nil {
		return false, err
	}

	accessToken := m.tokens.Get(tokenstore.KeyAccessToken)
	if accessToken == "" || persisted.User == nil {
		// No orphaned profiles without a session.
		m.lock.Lock()
		defer m.lock.Unlock()
		if err := m.teardownLocked(); err != nil {
			return false, err
		}
		return false, nil
	}

	role := persisted.UserRole
	if role == "" {
		role = users.RoleUser
	}

	m.lock.Lock()
	m.state = State{User: persisted.User, UserRole: role, IsAuthenticated: true}
	m.lock.Unlock()
	log.Debug().Str("email", persisted.User.Email).Msg("session rehydrated from storage")
	return true, nil
}

// HandleSessionExpired is the hook for the HTTP client's failed-refresh
// path: tear the session down and send the user to the login surface.
func (m *Manager) HandleSessionExpired() {
	m.lock.Lock()
	if err := m.teardownLocked(); err != nil {
		log.Warn().Err(err).Msg("error tearing down expired session")
	}
	m.lock.Unlock()

	log.Info().Msg("session expired; login required")
	if m.onLoginRequired != nil {
		m.onLoginRequired()
	}
}

// UpdateProfile merges partial changes into the profile snapshot and
// persists it. Requires an authenticated session.
func (m *Manager) UpdateProfile(update ProfileUpdate) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if !m.state.IsAuthenticated || m.state.User == nil {
		return internalerrors.ErrNotAuthenticated
	}

	updated := *m.state.User
	if update.FirstName != nil {
		updated.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		updated.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		updated.PhoneNumber = *update.PhoneNumber
	}
	m.state.User = &updated

	return m.states.Save(m.state)
}

// Current returns a copy of the observable session state.
func (m *Manager) Current() State {
	m.lock.RLock()
	defer m.lock.RUnlock()

	state := m.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state
}

// TokenExpiry reports when the stored access token expires, read from
// its unverified claims. ok is false when no token is stored or the
// token carries no readable expiry.
func (m *Manager) TokenExpiry() (expiry time.Time, ok bool) {
	return token.ExpiresAt(m.tokens.Get(tokenstore.KeyAccessToken))
}

// establish replaces the session wholesale after a successful auth
// exchange.
func (m *Manager) establish(resp authResponse) error {
	if resp.User == nil || resp.Access == "" || resp.Refresh == "" {
		return internalerrors.Wrapf(internalerrors.ErrMalformedResponse, "auth response missing required fields")
	}

	if err := m.tokens.Set(tokenstore.KeyAccessToken, resp.Access); err != nil {
		return errors.Wrap(err, "error storing access token")
	}
	if err := m.tokens.Set(tokenstore.KeyRefreshToken, resp.Refresh); err != nil {
		return errors.Wrap(err, "error storing refresh token")
	}

	state := State{User: resp.User, UserRole: users.RoleUser, IsAuthenticated: true}
	if err := m.states.Save(state); err != nil {
		return errors.Wrap(err, "error persisting session state")
	}

	m.lock.Lock()
	m.state = state
	m.lock.Unlock()
	return nil
}

func (m *Manager) teardownLocked() error {
	m.state = State{}
	if err := m.tokens.ClearAll(); err != nil {
		return errors.Wrap(err, "error clearing token store")
	}
	if err := m.states.Clear(); err != nil {
		return errors.Wrap(err, "error clearing session state")
	}
	return nil
}
