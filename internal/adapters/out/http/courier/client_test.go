package courier_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bakery/internal/adapters/out/http/courier"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDestination(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("42 Orchard Lane", "Springfield", "IL", "62704")
	require.NoError(t, err)
	return address
}

func pieRequest(t *testing.T) ports.StageRequest {
	t.Helper()
	return ports.StageRequest{
		Destination: testDestination(t),
		Package: ports.PackageSpec{
			Type:        "pie",
			Size:        "medium",
			Temperature: "warm",
		},
	}
}

func TestClient_Submit_Success(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/deliveries", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"deliveryId": "del_xyz00001",
			"droneId":    "drone-7",
			"eta":        time.Now().Add(20 * time.Minute).Format(time.RFC3339),
		})
	}))
	defer server.Close()

	client := courier.NewClient(courier.Config{BaseURL: server.URL})

	job, err := client.Submit(t.Context(), pieRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "del_xyz00001", job.ID)
	assert.Equal(t, "drone-7", job.WorkerID)

	pkg := gotBody["package"].(map[string]any)
	assert.Equal(t, "pie", pkg["type"])
	assert.Equal(t, "medium", pkg["size"])
	assert.Equal(t, "warm", pkg["temperature"])

	dest := gotBody["destination"].(map[string]any)
	assert.Equal(t, "42 Orchard Lane", dest["street"])
	assert.Equal(t, "Springfield", dest["city"])
	assert.Equal(t, "IL", dest["state"])
	assert.Equal(t, "62704", dest["zip"])

	window := gotBody["window"].(string)
	parts := strings.Split(window, "/")
	require.Len(t, parts, 2)
	start, err := time.Parse(time.RFC3339, parts[0])
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, parts[1])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), start, time.Minute)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), end, time.Minute)
}

func TestClient_Submit_RetriesOnceThenSucceeds(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "WEATHER_RESTRICTION",
				"message": "High winds preventing drone flights",
			})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"deliveryId": "del_retry001",
			"droneId":    "drone-2",
		})
	}))
	defer server.Close()

	client := courier.NewClient(courier.Config{
		BaseURL:    server.URL,
		RetryPause: time.Millisecond,
	})

	job, err := client.Submit(t.Context(), pieRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "del_retry001", job.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Submit_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "WEATHER_RESTRICTION",
			"message": "High winds preventing drone flights",
		})
	}))
	defer server.Close()

	client := courier.NewClient(courier.Config{
		BaseURL:    server.URL,
		RetryPause: time.Millisecond,
	})

	_, err := client.Submit(t.Context(), pieRequest(t))
	require.Error(t, err)
	assert.Equal(t, "WEATHER_RESTRICTION: High winds preventing drone flights", err.Error())
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Submit_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := courier.NewClient(courier.Config{
		BaseURL:       server.URL,
		SubmitTimeout: 20 * time.Millisecond,
		RetryPause:    time.Millisecond,
	})

	_, err := client.Submit(t.Context(), pieRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrCollaboratorTimeout)
}

func TestClient_GetStatus_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/deliveries/del_xyz00001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"deliveryId": "del_xyz00001",
			"status":     "IN_TRANSIT",
		})
	}))
	defer server.Close()

	client := courier.NewClient(courier.Config{BaseURL: server.URL})

	status, err := client.GetStatus(t.Context(), "del_xyz00001")
	require.NoError(t, err)
	assert.Equal(t, "del_xyz00001", status.JobID)
	assert.Equal(t, "IN_TRANSIT", status.Status)
}
