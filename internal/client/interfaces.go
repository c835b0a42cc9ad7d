// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/sheetcharts/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Execute parses the command line and runs the selected command.
	Execute(ctx context.Context) error
}

// AxesPicker asks the user for whatever part of the chart selection is
// still missing.
type AxesPicker interface {
	PickAxes(ctx context.Context, columns []string, preset models.Axes) (models.Axes, error)
}
