// Package baker calls the baking service that schedules oven time for an
// order. Implements ports.StageClient over the service's REST contract.
package baker

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

// Config holds the connection settings for the baking service.
type Config struct {
	BaseURL       string
	APIKey        string
	SubmitTimeout time.Duration
	StatusTimeout time.Duration
}

// Client submits baking jobs to the baking service.
type Client struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	submitTimeout time.Duration
	statusTimeout time.Duration
}

// NewClient creates a baking service client.
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
	PieType     string `json:"pieType"`
	Temperature int    `json:"temperature"`
	Duration    int    `json:"duration"`
}

type submitResponse struct {
	JobID               string `json:"jobId"`
	OvenID              string `json:"ovenId"`
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

// Submit schedules the oven job for one order using the recipe's temperature
// and duration. The call is bounded by the submit timeout; there is no retry.
func (c *Client) Submit(ctx context.Context, req ports.StageRequest) (ports.StageJob, error) {
	body, err := json.Marshal(submitRequest{
		PieType:     req.PieType,
		Temperature: req.Temperature,
		Duration:    req.Duration,
	})
	if err != nil {
		return ports.StageJob{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/v1/bake", bytes.NewReader(body))
	if err != nil {
		return ports.StageJob{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ports.StageJob{}, fmt.Errorf("baker: %w", ports.ErrCollaboratorTimeout)
		}
		return ports.StageJob{}, fmt.Errorf("baker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.StageJob{}, decodeError(resp)
	}

	var submitResp submitResponse
	if err = json.NewDecoder(resp.Body).Decode(&submitResp); err != nil {
		return ports.StageJob{}, fmt.Errorf("baker: %w", err)
	}

	job := ports.StageJob{
		ID:       submitResp.JobID,
		WorkerID: submitResp.OvenID,
	}
	if eta, parseErr := time.Parse(time.RFC3339, submitResp.EstimatedCompletion); parseErr == nil {
		job.ETA = eta
	}
	return job, nil
}

// GetStatus reports the progress of a previously submitted baking job.
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
			return ports.StageStatus{}, fmt.Errorf("baker: %w", ports.ErrCollaboratorTimeout)
		}
		return ports.StageStatus{}, fmt.Errorf("baker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.StageStatus{}, decodeError(resp)
	}

	var statusResp statusResponse
	if err = json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return ports.StageStatus{}, fmt.Errorf("baker: %w", err)
	}

	return ports.StageStatus{
		JobID:    statusResp.JobID,
		Status:   statusResp.Status,
		Progress: statusResp.Progress,
	}, nil
}

func decodeError(resp *http.Response) error {
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("baker: unexpected status %d", resp.StatusCode)
	}
	return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
}
