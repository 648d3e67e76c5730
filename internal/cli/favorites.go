package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoriteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <service-id>",
		Short: "Toggle a service in your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			serviceID := args[0]
			if err := app.bookings.ToggleFavorite(cmd.Context(), sess, serviceID); err != nil {
				return err
			}
			if app.bookings.IsFavorite(sess, serviceID) {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", serviceID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", serviceID)
			}
			return nil
		},
	}
}
