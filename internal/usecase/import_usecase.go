package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ImportUsecase covers the price feed import pipeline. Queue runs on the
// API side; Run executes inside the background worker.
type ImportUsecase interface {
	// Queue validates the caller and publishes an import request for the
	// given feed URL. The heavy lifting happens asynchronously.
	Queue(ctx context.Context, userID uuid.UUID, feedURL string) error

	// Run downloads the feed and atomically replaces the caller's shop
	// catalog with its contents.
	Run(ctx context.Context, userID uuid.UUID, feedURL string) error
}
