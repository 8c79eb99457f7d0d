package commander

import (
	"errors"
	"fmt"
)

// RunType is type of run requested by command.
type RunType string

const (
	// RunTypePrice requests price snapshots of all items.
	RunTypePrice RunType = "price"
	// RunTypePosition requests search position snapshots of all keywords.
	RunTypePosition RunType = "position"
	// RunTypeSellerAPI requests seller-api prices synchronization.
	RunTypeSellerAPI RunType = "seller-api"
	// RunTypePrepare requests prepared views rebuild.
	RunTypePrepare RunType = "prepare"
)

// ErrUnknownRunType is returned for run type tracker doesn't handle.
var ErrUnknownRunType = errors.New("unknown run type")

// RunTypes returns all run types.
func RunTypes() []RunType {
	return []RunType{RunTypePrice, RunTypePosition, RunTypeSellerAPI, RunTypePrepare}
}

// ParseRunType returns run type named s.
func ParseRunType(s string) (RunType, error) {
	for _, runType := range RunTypes() {
		if string(runType) == s {
			return runType, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownRunType, s)
}

// RunCommand is command requesting single run.
type RunCommand struct {
	Type RunType `json:"type"`
}
