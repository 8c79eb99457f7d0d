package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// RunFunc performs single run.
type RunFunc func(ctx context.Context) error

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles RMQ run commands.
type RMQHandler struct {
	consumer Consumer
	runners  map[commander.RunType]RunFunc
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler dispatching commands to runners by run type.
func NewHandler(consumer Consumer, runners map[commander.RunType]RunFunc, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer: consumer,
		runners:  runners,
		logger:   logger,
	}
}

// Start starts consuming and handling run commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle runs command from message.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	run, ok := h.runners[cmd.Type]
	if !ok {
		return fmt.Errorf("%w: %q", commander.ErrUnknownRunType, cmd.Type)
	}

	h.logger.Debug().
		Str("type", string(cmd.Type)).
		Msg("run started")

	if err := run(ctx); err != nil {
		return fmt.Errorf("%s run failed: %w", cmd.Type, err)
	}

	h.logger.Debug().
		Str("type", string(cmd.Type)).
		Msg("run finished")

	return nil
}

func decodeMessage(msg []byte) (*commander.RunCommand, error) {
	var cmd commander.RunCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode run command: %w", err)
	}

	return &cmd, nil
}
