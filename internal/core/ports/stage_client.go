package ports

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// ErrCollaboratorTimeout indicates that a collaborator call exceeded its
// bounded timeout. It is a distinct failure kind so callers can tell a slow
// collaborator from one that rejected the request.
var ErrCollaboratorTimeout = errors.New("collaborator request timed out")

// PackageSpec describes the parcel handed to the delivery service.
type PackageSpec struct {
	Type        string
	Size        string
	Temperature string
}

// StageRequest carries the parameters for one stage's external job submission.
// Each collaborator reads only the fields relevant to its stage: harvesting
// uses PieType/Quantity/Quality, baking uses PieType/Temperature/Duration,
// delivery uses Destination/Package.
type StageRequest struct {
	PieType     string
	Quantity    float64
	Quality     string
	Temperature int
	Duration    int
	Destination kernel.Address
	Package     PackageSpec
}

// StageJob is the asynchronous job handle a collaborator returns on submission.
// WorkerID identifies the assigned resource (oven, drone) when the service
// reports one.
type StageJob struct {
	ID       string
	WorkerID string
	ETA      time.Time
}

// StageStatus reports the progress of a previously submitted job.
type StageStatus struct {
	JobID    string
	Status   string
	Progress int
}

// StageClient is the capability interface every external collaborator
// implements. The saga driver depends only on this interface, so transports
// and backends can be swapped without touching the driver.
//
// Submit issues the stage's real-world job and returns its handle; the call
// is bounded by a per-collaborator timeout, surfaced as ErrCollaboratorTimeout.
// GetStatus is available for completion polling; the current driver advances
// on a settle delay instead and does not call it.
type StageClient interface {
	Submit(ctx context.Context, req StageRequest) (StageJob, error)
	GetStatus(ctx context.Context, jobID string) (StageStatus, error)
}
