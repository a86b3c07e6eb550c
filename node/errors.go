package node

import "errors"

var (
	ErrInvalidNodeID      = errors.New("node ID must be a positive integer")
	ErrPortRequired       = errors.New("port is required")
	ErrPrinterRequired    = errors.New("printer address is required")
	ErrInvalidJobInterval = errors.New("job interval bounds must be non-negative with min <= max")
	ErrAlreadyStarted     = errors.New("node already started")
	ErrNotStarted         = errors.New("node not started")
)
