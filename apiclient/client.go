package apiclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	internalerrors "github.com/nyayasetu/go-legalaid/internal/errors"
	"github.com/nyayasetu/go-legalaid/tokenstore"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Refresher obtains a fresh access token after the backend reports the
// current one invalid. Satisfied by *refresh.Coordinator.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// retryOutcome is the interceptor's decision for a response. It is an
// explicit value rather than a flag mutated on the request, so a
// request can never be processed twice by accident.
type retryOutcome int

const (
	outcomePassThrough retryOutcome = iota // hand the response to the caller as-is
	outcomeRetry                           // refresh succeeded; resubmit once with the new token
	outcomeFail                            // refresh failed; session is gone, surface the original 401
)

// Client is the single choke point for calls to the portal backend. It
// attaches the current access token as a bearer credential, and on a
// 401 triggers the refresh flow and replays the original request
// exactly once.
type Client struct {
	apiAddress string
	store      tokenstore.Store
	refresher  Refresher
	httpClient *http.Client

	// onSessionExpired runs after an unrecoverable refresh failure has
	// cleared the token store; the session layer hooks its teardown and
	// login redirect here.
	onSessionExpired func()
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRefresher wires the refresh coordinator. Without one, a 401 is
// passed through to the caller unrecovered.
func WithRefresher(refresher Refresher) ClientOption {
	return func(c *Client) {
		c.refresher = refresher
	}
}

// WithSessionExpiredHandler registers the hook invoked after a failed
// refresh has cleared the token store.
func WithSessionExpiredHandler(handler func()) ClientOption {
	return func(c *Client) {
		c.onSessionExpired = handler
	}
}

// WithAllowInsecure disables TLS certificate verification. It adjusts
// the transport in place, so it composes with WithHTTPClient when that
// option is applied first.
func WithAllowInsecure(allow bool) ClientOption {
	return func(c *Client) {
		if !allow {
			return
		}
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, // nolint: gosec
			},
		}
	}
}

// NewClient creates a Client for the backend at apiAddress.
func NewClient(apiAddress string, store tokenstore.Store, options ...ClientOption) (*Client, error) {
	if apiAddress == "" {
		return nil, errors.New("[NewClient] apiAddress is required")
	}
	if store == nil {
		return nil, errors.New("[NewClient] store is required")
	}

	client := &Client{
		apiAddress: apiAddress,
		store:      store,
		httpClient: &http.Client{},
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

// ExecuteRequest submits the request and, when req.RespObj is non-nil,
// decodes the response body into it. A body that does not match the
// expected shape is a typed decode error, never silently-zero fields.
func (c *Client) ExecuteRequest(ctx context.Context, req Request) error {
	resp, err := c.SubmitRequest(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if req.RespObj != nil {
		respBodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, req.RespObj); err != nil {
			return internalerrors.Wrapf(internalerrors.ErrMalformedResponse, "error unmarshaling response body")
		}
	}
	return nil
}

// SubmitRequest submits the request and classifies the response. The
// caller owns the response body on success.
func (c *Client) SubmitRequest(ctx context.Context, req Request) (*http.Response, error) {
	reqBodyBytes, err := marshalRequestBody(req.ReqBodyObj)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, req, reqBodyBytes)
	if err != nil {
		// Network-level failure; propagate directly, no retry.
		return nil, err
	}

	switch c.classify(ctx, resp, false) {
	case outcomePassThrough:
		return c.passThrough(req, resp)
	case outcomeRetry:
		resp.Body.Close()
		retryResp, err := c.send(ctx, req, reqBodyBytes)
		if err != nil {
			return nil, err
		}
		// Already retried once: any further 401 passes through.
		if c.classify(ctx, retryResp, true) != outcomePassThrough {
			return nil, responseError(retryResp)
		}
		return c.passThrough(req, retryResp)
	default:
		return nil, responseError(resp)
	}
}

// classify decides what to do with a response. Only a 401 on a request
// that has not yet been retried triggers the refresh flow.
func (c *Client) classify(ctx context.Context, resp *http.Response, alreadyRetried bool) retryOutcome {
	if resp.StatusCode != http.StatusUnauthorized {
		return outcomePassThrough
	}
	if alreadyRetried || c.refresher == nil {
		return outcomePassThrough
	}

	if err := c.refresher.Refresh(ctx); err != nil {
		log.Debug().Err(err).Msg("refresh failed; clearing session")
		if clearErr := c.store.ClearAll(); clearErr != nil {
			log.Warn().Err(clearErr).Msg("error clearing token store")
		}
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return outcomeFail
	}
	return outcomeRetry
}

// passThrough hands a response to the caller, converting unexpected
// statuses into an APIError carrying the raw body.
func (c *Client) passThrough(req Request, resp *http.Response) (*http.Response, error) {
	successCode := req.SuccessCode
	if successCode == 0 {
		successCode = http.StatusOK
	}
	if resp.StatusCode != successCode {
		return nil, responseError(resp)
	}
	return resp, nil
}

// send builds and dispatches one physical request. Each call re-reads
// the access token from the store, so a replay after refresh carries
// the new credential.
func (c *Client) send(ctx context.Context, req Request, reqBodyBytes []byte) (*http.Response, error) {
	var reqBodyReader io.Reader
	if reqBodyBytes != nil {
		reqBodyReader = bytes.NewReader(reqBodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		req.Method,
		fmt.Sprintf("%s%s", c.apiAddress, req.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating request %s %s", req.Method, req.Path)
	}

	if len(req.QueryParams) > 0 {
		q := url.Values{}
		for k, v := range req.QueryParams {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if accessToken := c.store.Get(tokenstore.KeyAccessToken); accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "error invoking API %s %s", req.Method, req.Path)
	}
	return resp, nil
}

func marshalRequestBody(bodyObj interface{}) ([]byte, error) {
	if bodyObj == nil {
		return nil, nil
	}
	switch rb := bodyObj.(type) {
	case []byte:
		return rb, nil
	default:
		b, err := json.Marshal(bodyObj)
		if err != nil {
			return nil, errors.Wrap(err, "error marshaling request body")
		}
		return b, nil
	}
}

// responseError drains the body into an APIError and closes it.
func responseError(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return &APIError{StatusCode: resp.StatusCode, Body: body}
}
