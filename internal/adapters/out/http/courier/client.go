// Package courier calls the drone delivery service that carries finished pies
// to the customer. Implements ports.StageClient over the service's REST
// contract.
package courier

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
	defaultSubmitTimeout = 8 * time.Second
	defaultStatusTimeout = 5 * time.Second
	defaultRetryPause    = time.Second

	// One retry: delivery scheduling is the flakiest collaborator and a
	// single resubmission resolves most transient drone-dispatch rejections.
	submitAttempts = 2

	windowStart = time.Hour
	windowEnd   = 2 * time.Hour
)

// Config holds the connection settings for the delivery service.
type Config struct {
	BaseURL       string
	SubmitTimeout time.Duration
	StatusTimeout time.Duration
	RetryPause    time.Duration
}

// Client submits delivery jobs to the drone delivery service.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	submitTimeout time.Duration
	statusTimeout time.Duration
	retryPause    time.Duration
}

// NewClient creates a delivery service client.
// Zero timeouts and pauses fall back to the service defaults.
func NewClient(cfg Config) *Client {
	submitTimeout := cfg.SubmitTimeout
	if submitTimeout == 0 {
		submitTimeout = defaultSubmitTimeout
	}
	statusTimeout := cfg.StatusTimeout
	if statusTimeout == 0 {
		statusTimeout = defaultStatusTimeout
	}
	retryPause := cfg.RetryPause
	if retryPause == 0 {
		retryPause = defaultRetryPause
	}

	return &Client{
		baseURL:       cfg.BaseURL,
		httpClient:    &http.Client{},
		submitTimeout: submitTimeout,
		statusTimeout: statusTimeout,
		retryPause:    retryPause,
	}
}

type packageDTO struct {
	Type        string `json:"type"`
	Size        string `json:"size"`
	Temperature string `json:"temperature"`
}

type destinationDTO struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type submitRequest struct {
	Package     packageDTO     `json:"package"`
	Destination destinationDTO `json:"destination"`
	Window      string         `json:"window"`
}

type submitResponse struct {
	DeliveryID string `json:"deliveryId"`
	DroneID    string `json:"droneId"`
	ETA        string `json:"eta"`
}

type statusResponse struct {
	DeliveryID string `json:"deliveryId"`
	Status     string `json:"status"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Submit schedules a drone delivery to the order's destination within the
// next delivery window. Retries once after a short pause before giving up.
func (c *Client) Submit(ctx context.Context, req ports.StageRequest) (ports.StageJob, error) {
	body, err := json.Marshal(submitRequest{
		Package: packageDTO{
			Type:        req.Package.Type,
			Size:        req.Package.Size,
			Temperature: req.Package.Temperature,
		},
		Destination: destinationDTO{
			Street: req.Destination.Street(),
			City:   req.Destination.City(),
			State:  req.Destination.State(),
			Zip:    req.Destination.Zip(),
		},
		Window: deliveryWindow(time.Now()),
	})
	if err != nil {
		return ports.StageJob{}, err
	}

	var lastErr error
	for attempt := 0; attempt < submitAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ports.StageJob{}, ctx.Err()
			case <-time.After(c.retryPause):
			}
		}

		job, submitErr := c.submitOnce(ctx, body)
		if submitErr == nil {
			return job, nil
		}
		lastErr = submitErr
	}

	return ports.StageJob{}, lastErr
}

func (c *Client) submitOnce(ctx context.Context, body []byte) (ports.StageJob, error) {
	ctx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/v1/deliveries", bytes.NewReader(body))
	if err != nil {
		return ports.StageJob{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ports.StageJob{}, fmt.Errorf("delivery: %w", ports.ErrCollaboratorTimeout)
		}
		return ports.StageJob{}, fmt.Errorf("delivery: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.StageJob{}, decodeError(resp)
	}

	var submitResp submitResponse
	if err = json.NewDecoder(resp.Body).Decode(&submitResp); err != nil {
		return ports.StageJob{}, fmt.Errorf("delivery: %w", err)
	}

	job := ports.StageJob{
		ID:       submitResp.DeliveryID,
		WorkerID: submitResp.DroneID,
	}
	if eta, parseErr := time.Parse(time.RFC3339, submitResp.ETA); parseErr == nil {
		job.ETA = eta
	}
	return job, nil
}

// GetStatus reports the progress of a previously scheduled delivery.
func (c *Client) GetStatus(ctx context.Context, jobID string) (ports.StageStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.statusTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/api/v1/deliveries/"+jobID, nil)
	if err != nil {
		return ports.StageStatus{}, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ports.StageStatus{}, fmt.Errorf("delivery: %w", ports.ErrCollaboratorTimeout)
		}
		return ports.StageStatus{}, fmt.Errorf("delivery: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.StageStatus{}, decodeError(resp)
	}

	var statusResp statusResponse
	if err = json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return ports.StageStatus{}, fmt.Errorf("delivery: %w", err)
	}

	return ports.StageStatus{
		JobID:  statusResp.DeliveryID,
		Status: statusResp.Status,
	}, nil
}

// deliveryWindow renders the ISO 8601 interval the drone should arrive in,
// one to two hours from now.
func deliveryWindow(now time.Time) string {
	start := now.Add(windowStart).UTC().Format(time.RFC3339)
	end := now.Add(windowEnd).UTC().Format(time.RFC3339)
	return start + "/" + end
}

func decodeError(resp *http.Response) error {
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("delivery: unexpected status %d", resp.StatusCode)
	}
	return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
}
