package handler_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/handler"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitHandle(t *testing.T) {
	tests := map[string]struct {
		message  string
		runErr   error
		wantRuns []commander.RunType
		wantErr  error
		wantMsg  string
	}{
		"price run": {
			message:  `{"type":"price"}`,
			wantRuns: []commander.RunType{commander.RunTypePrice},
		},
		"prepare run": {
			message:  `{"type":"prepare"}`,
			wantRuns: []commander.RunType{commander.RunTypePrepare},
		},
		"run error": {
			message:  `{"type":"position"}`,
			runErr:   assert.AnError,
			wantRuns: []commander.RunType{commander.RunTypePosition},
			wantErr:  assert.AnError,
			wantMsg:  "position run failed",
		},
		"unknown type": {
			message: `{"type":"stock"}`,
			wantErr: commander.ErrUnknownRunType,
		},
		"invalid message": {
			message: `{"type":`,
			wantMsg: "can't decode run command",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			runs := []commander.RunType{}
			runners := map[commander.RunType]handler.RunFunc{}
			for _, runType := range commander.RunTypes() {
				runners[runType] = func(context.Context) error {
					runs = append(runs, runType)
					return tt.runErr
				}
			}

			logger := zerolog.Nop()
			err := handler.NewHandler(nil, runners, &logger).Handle(context.TODO(), []byte(tt.message))

			if tt.wantErr == nil && tt.wantMsg == "" {
				require.NoError(t, err, "shouldn't return any error")
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			}
			if tt.wantMsg != "" {
				require.ErrorContains(t, err, tt.wantMsg, "should return error message")
			}
			assert.ElementsMatch(t, tt.wantRuns, runs, "should run requested runner only")
		})
	}
}

type fakeConsumer struct {
	queue  string
	errors chan error
	handle rabbitmq.HandlerFunc
}

func (c *fakeConsumer) Consume(_ context.Context, queue string, handle rabbitmq.HandlerFunc) (<-chan error, error) {
	c.queue = queue
	c.handle = handle
	return c.errors, nil
}

func TestUnitStart(t *testing.T) {
	consumer := &fakeConsumer{errors: make(chan error)}
	buf := &syncBuffer{written: make(chan struct{}, 1)}
	logger := zerolog.New(buf)

	runners := map[commander.RunType]handler.RunFunc{
		commander.RunTypePrice: func(context.Context) error { return nil },
	}

	err := handler.NewHandler(consumer, runners, &logger).Start(context.TODO(), "commands")
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "commands", consumer.queue, "should consume provided queue")
	require.NoError(t, consumer.handle(context.TODO(), []byte(`{"type":"price"}`)), "should handle consumed messages")

	consumer.errors <- assert.AnError
	close(consumer.errors)

	select {
	case <-buf.written:
	case <-time.After(time.Second):
		t.Fatal("consuming error wasn't logged")
	}
	assert.Contains(t, buf.String(), assert.AnError.Error(), "should log consuming errors")
}

// syncBuffer signals first write.
type syncBuffer struct {
	bytes.Buffer
	written chan struct{}
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	n, err := b.Buffer.Write(p)
	select {
	case b.written <- struct{}{}:
	default:
	}
	return n, err
}
