package cmd

import (
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/pkg/v1/commander"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "run <type>",
		Short:     "Runs parsing of provided type in this process.",
		Args:      runTypeArg,
		ValidArgs: runTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runType := commander.RunType(args[0])

			run, ok := getEnv(cmd.Context()).Runners[runType]
			if !ok {
				return fmt.Errorf("%w: %q", commander.ErrUnknownRunType, runType)
			}

			if err := run(cmd.Context()); err != nil {
				return fmt.Errorf("%s run failed: %w", runType, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s run finished\n", runType)
			return nil
		},
	}
}

func newSendCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "send <type>",
		Short:     "Requests run of provided type from tracker service.",
		Args:      runTypeArg,
		ValidArgs: runTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runType := commander.RunType(args[0])

			if err := getEnv(cmd.Context()).Commander.SendRunCommand(cmd.Context(), runType); err != nil {
				return fmt.Errorf("can't send %s run command: %w", runType, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s run requested\n", runType)
			return nil
		},
	}
}

func runTypeNames() []string {
	names := []string{}
	for _, runType := range commander.RunTypes() {
		names = append(names, string(runType))
	}
	return names
}
