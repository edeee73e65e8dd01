package main

import (
	"context"

	"tippy/internal/observability"
	"tippy/internal/tipcalc"
)

// initMetrics initialises the meter provider and the tip domain's
// instruments.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := tipcalc.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
