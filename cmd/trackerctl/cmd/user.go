package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manages users.",
	}

	var chatID int64
	var sellerToken string

	add := &cobra.Command{
		Use:   "add",
		Short: "Adds user or updates seller token of existing one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var token *string
			if cmd.Flags().Changed("seller-token") {
				token = &sellerToken
			}

			u, err := getEnv(cmd.Context()).Storage.UpsertUser(cmd.Context(), chatID, token)
			if err != nil {
				return fmt.Errorf("can't add user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %d (chat %d)\n", u.ID, u.ChatID)
			return nil
		},
	}
	add.Flags().Int64Var(&chatID, "chat-id", 0, "chat id of user")
	add.Flags().StringVar(&sellerToken, "seller-token", "", "seller-api token of user")
	_ = add.MarkFlagRequired("chat-id")

	user.AddCommand(add)

	return user
}
