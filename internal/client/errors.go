package client

import "errors"

var (
	errInvalidID          = errors.New("id must be a positive integer")
	errUnknownChartFormat = errors.New("output file must end in .png or .pdf")
	errMissingCredentials = errors.New("email and password are required")
)
