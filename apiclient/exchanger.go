package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	internalerrors "github.com/nyayasetu/go-legalaid/internal/errors"
	"github.com/nyayasetu/go-legalaid/refresh"
	"github.com/pkg/errors"
)

var _ refresh.Exchanger = (*TokenExchanger)(nil)

// tokenRefreshRequest is the contract of POST /users/token/refresh/.
type tokenRefreshRequest struct {
	Refresh string `json:"refresh"`
}

type tokenRefreshResponse struct {
	Access string `json:"access"`
}

// TokenExchanger trades a refresh token for a new access token. It
// deliberately bypasses the interceptor chain: the exchange itself
// must never trigger another refresh.
type TokenExchanger struct {
	apiAddress string
	httpClient *http.Client
}

// NewTokenExchanger creates a TokenExchanger for the backend at
// apiAddress. A nil httpClient falls back to a default client.
func NewTokenExchanger(apiAddress string, httpClient *http.Client) *TokenExchanger {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &TokenExchanger{apiAddress: apiAddress, httpClient: httpClient}
}

func (e *TokenExchanger) ExchangeRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(tokenRefreshRequest{Refresh: refreshToken})
	if err != nil {
		return "", errors.Wrap(err, "error marshaling refresh request")
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/users/token/refresh/", e.apiAddress),
		bytes.NewReader(body),
	)
	if err != nil {
		return "", errors.Wrap(err, "error creating refresh request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "error invoking refresh endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}

	var decoded tokenRefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", internalerrors.Wrapf(internalerrors.ErrMalformedResponse, "error decoding refresh response")
	}
	if decoded.Access == "" {
		// The exchange "succeeded" but the expected field is missing.
		return "", internalerrors.Wrapf(internalerrors.ErrMalformedResponse, "refresh response missing access token")
	}
	return decoded.Access, nil
}
