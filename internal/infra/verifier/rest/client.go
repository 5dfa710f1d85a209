// Package rest implements the verification providers over their JSON REST APIs.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/escrowwatch/internal/pkg/validator"
	"github.com/gabapcia/escrowwatch/internal/verification"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus indicates that the provider answered with a non-200 status code.
var ErrUnexpectedStatus = errors.New("unexpected http status")

type client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
}

var (
	_ verification.ShipmentTracker  = (*client)(nil)
	_ verification.DocumentVerifier = (*client)(nil)
	_ verification.EmailConfirmer   = (*client)(nil)
	_ verification.OracleReader     = (*client)(nil)
)

type shipmentResponse struct {
	Status string `json:"status" validate:"required"`
}

// TrackShipment calls GET {base}/v1/track/{provider}/{tracking_id}.
func (c *client) TrackShipment(ctx context.Context, provider, trackingID string) (verification.ShipmentStatus, error) {
	var res shipmentResponse
	path := fmt.Sprintf("/v1/track/%s/%s", url.PathEscape(provider), url.PathEscape(trackingID))
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return verification.ShipmentStatus{}, err
	}

	return verification.ShipmentStatus{Status: res.Status}, nil
}

type documentRequest struct {
	DocumentHash string `json:"document_hash"`
}

type documentResponse struct {
	Verified *bool `json:"verified" validate:"required"`
}

// VerifyDocument calls POST {base}/v1/documents/verify.
func (c *client) VerifyDocument(ctx context.Context, documentHash string) (verification.DocumentVerification, error) {
	var res documentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/documents/verify", documentRequest{DocumentHash: documentHash}, &res); err != nil {
		return verification.DocumentVerification{}, err
	}

	return verification.DocumentVerification{Verified: *res.Verified}, nil
}

type emailResponse struct {
	Status    string `json:"status" validate:"required"`
	Timestamp string `json:"timestamp"`
}

// GetEmailConfirmation calls GET {base}/v1/emails/{email_id}/confirmation.
func (c *client) GetEmailConfirmation(ctx context.Context, emailID string) (verification.EmailConfirmation, error) {
	var res emailResponse
	path := fmt.Sprintf("/v1/emails/%s/confirmation", url.PathEscape(emailID))
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return verification.EmailConfirmation{}, err
	}

	return verification.EmailConfirmation{Status: res.Status, Timestamp: res.Timestamp}, nil
}

type oracleResponse struct {
	Value     *string `json:"value" validate:"required"`
	Timestamp string  `json:"timestamp"`
}

// ReadOracle calls GET {base}/v1/oracles/{oracle_id}.
func (c *client) ReadOracle(ctx context.Context, oracleID string) (verification.OracleReading, error) {
	var res oracleResponse
	path := fmt.Sprintf("/v1/oracles/%s", url.PathEscape(oracleID))
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return verification.OracleReading{}, err
	}

	return verification.OracleReading{Value: *res.Value, Timestamp: res.Timestamp}, nil
}

// do sends a JSON request and decodes the validated response into out.
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var rawBody any
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rawBody = payload
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, rawBody)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	return validator.Validate(out)
}

// NewClient returns a provider client for the API rooted at baseURL. apiKey
// is sent as a Bearer token when not empty.
func NewClient(baseURL, apiKey string, httpClient *retryablehttp.Client) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}
