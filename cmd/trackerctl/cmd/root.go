// Package cmd holds trackerctl commands.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/internal/handler"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/commander"
	"github.com/spf13/cobra"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name RunCommander --filename run_commander.go

// Storage is storage used by operator commands.
type Storage interface {
	UpsertUser(ctx context.Context, chatID int64, sellerToken *string) (models.User, error)
	ImportItems(ctx context.Context, userID int, items []models.ImportedItem) (int, error)
	GetItems(ctx context.Context) ([]models.Item, error)
	GetKeywords(ctx context.Context) ([]models.TrackedKeyword, error)
	GetPreparedPrices(ctx context.Context) ([]models.PreparedPrice, error)
	GetPreparedPositions(ctx context.Context) ([]models.PreparedPosition, error)
}

// RunCommander sends run commands to tracker service.
type RunCommander interface {
	SendRunCommand(ctx context.Context, runType commander.RunType) error
}

// Env is everything commands work with.
type Env struct {
	Storage   Storage
	Runners   map[commander.RunType]handler.RunFunc
	Commander RunCommander
}

// Connect builds Env. Returned function releases its resources.
type Connect func(ctx context.Context) (*Env, func(), error)

type envKey struct{}

func getEnv(ctx context.Context) *Env {
	return ctx.Value(envKey{}).(*Env)
}

// NewRootCommand returns trackerctl root command connecting lazily with connect.
func NewRootCommand(connect Connect) *cobra.Command {
	var release func()

	root := &cobra.Command{
		Use:           "trackerctl",
		Short:         "trackerctl manages marketplace tracker users, items, runs and reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env, closeEnv, err := connect(cmd.Context())
			if err != nil {
				return fmt.Errorf("can't connect: %w", err)
			}
			release = closeEnv
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, env))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if release != nil {
				release()
			}
		},
	}

	root.AddCommand(
		newUserCommand(),
		newImportCommand(),
		newRunCommand(),
		newSendCommand(),
		newReportCommand(),
	)

	return root
}

func runTypeArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one run type")
	}

	_, err := commander.ParseRunType(args[0])
	return err
}
