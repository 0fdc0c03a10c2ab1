package poker

import "errors"

var (
	// ErrInvalidArgument reports a request that can never be satisfied,
	// such as a negative player count or an unknown hand name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported reports a recognized request that is not implemented yet.
	ErrUnsupported = errors.New("hands other than full house have not yet been implemented")
)
