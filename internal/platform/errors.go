package platform

import (
	"errors"
)

// ErrAlreadyRunning is an error returned when run can't be started because previous run of the same type is not finished yet.
var ErrAlreadyRunning = errors.New("parsing of this type already running")
