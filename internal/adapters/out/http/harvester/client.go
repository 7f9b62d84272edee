// Package harvester calls the fruit-picking service that gathers the raw
// fruit for an order. Implements ports.StageClient over the service's REST
// contract.
package harvester

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bakery/internal/core/ports"
)

const (
	defaultSubmitTimeout = 10 * time.Second
	defaultStatusTimeout = 5 * time.Second
)

// Config holds the connection settings for the fruit-picking service.
type Config struct {
	BaseURL       string
	APIKey        string
	SubmitTimeout time.Duration
	StatusTimeout time.Duration
}

// Client submits harvest jobs to the fruit-picking service.
type Client struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	submitTimeout time.Duration
	statusTimeout time.Duration
}

// NewClient creates a fruit-picking service client.
// Zero timeouts fall back to the service defaults.
func NewClient(cfg Config) *Client {
	submitTimeout := cfg.SubmitTimeout
	if submitTimeout == 0 {
		submitTimeout = defaultSubmitTimeout
	}
	statusTimeout := cfg.StatusTimeout
	if statusTimeout == 0 {
		statusTimeout = defaultStatusTimeout
	}

	return &Client{
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		httpClient:    &http.Client{},
		submitTimeout: submitTimeout,
		statusTimeout: statusTimeout,
	}
}

type submitRequest struct {
	FruitType string  `json:"fruitType"`
	Quantity  float64 `json:"quantity"`
	Quality   string  `json:"quality"`
}

type submitResponse struct {
	JobID               string `json:"jobId"`
	EstimatedCompletion string `json:"estimatedCompletion"`
}

type statusResponse struct {
	JobID    string `json:"jobId"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Submit asks the service to pick the fruit for one order.
// The call is bounded by the submit timeout; there is no retry.
func (c *Client) Submit(ctx context.Context, req ports.StageRequest) (ports.StageJob, error) {
	body, err := json.Marshal(submitRequest{
		FruitType: req.PieType,
		Quantity:  req.Quantity,
		Quality:   req.Quality,
	})
	if err != nil {
		return ports.StageJob{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/v1/pick-fruit", bytes.NewReader(body))
	if err != nil {
		return ports.StageJob{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ports.StageJob{}, fmt.Errorf("fruit picker: %w", ports.ErrCollaboratorTimeout)
		}
		return ports.StageJob{}, fmt.Errorf("fruit picker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.StageJob{}, decodeError(resp)
	}

	var submitResp submitResponse
	if err = json.NewDecoder(resp.Body).Decode(&submitResp); err != nil {
		return ports.StageJob{}, fmt.Errorf("fruit picker: %w", err)
	}

	return ports.StageJob{
		ID:  submitResp.JobID,
		ETA: parseETA(submitResp.EstimatedCompletion),
	}, nil
}

// GetStatus reports the progress of a previously submitted harvest job.
func (c *Client) GetStatus(ctx context.Context, jobID string) (ports.StageStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.statusTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/api/v1/jobs/"+jobID, nil)
	if err != nil {
		return ports.StageStatus{}, err
	}
	httpReq.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ports.StageStatus{}, fmt.Errorf("fruit picker: %w", ports.ErrCollaboratorTimeout)
		}
		return ports.StageStatus{}, fmt.Errorf("fruit picker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.StageStatus{}, decodeError(resp)
	}

	var statusResp statusResponse
	if err = json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return ports.StageStatus{}, fmt.Errorf("fruit picker: %w", err)
	}

	return ports.StageStatus{
		JobID:    statusResp.JobID,
		Status:   statusResp.Status,
		Progress: statusResp.Progress,
	}, nil
}

// decodeError turns a non-2xx response into an error carrying the service's
// own error code and message, so the saga records the rejection verbatim.
func decodeError(resp *http.Response) error {
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("fruit picker: unexpected status %d", resp.StatusCode)
	}
	return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
}

// parseETA parses the service's estimated completion timestamp.
// A missing or malformed timestamp yields the zero time.
func parseETA(raw string) time.Time {
	eta, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return eta
}
