package screen

import (
	"context"

	"weatherscreen.app/internal/core/weather"
)

// Fetcher performs one weather lookup per call.
type Fetcher interface {
	Fetch(ctx context.Context, query weather.LocationQuery) (*weather.Result, error)
}
