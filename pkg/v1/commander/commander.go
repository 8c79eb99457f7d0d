package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// RunCommander sends run commands.
type RunCommander struct {
	sender Sender
}

// NewRunCommander returns new RunCommander using provided sender for sending messages.
func NewRunCommander(sender Sender) RunCommander {
	return RunCommander{
		sender: sender,
	}
}

// SendRunCommand sends command requesting run of provided type.
func (c RunCommander) SendRunCommand(ctx context.Context, runType RunType) error {
	if _, err := ParseRunType(string(runType)); err != nil {
		return err
	}

	cmdMsg, err := json.Marshal(RunCommand{Type: runType})
	if err != nil {
		return fmt.Errorf("can't marshal run command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
