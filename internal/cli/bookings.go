package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sulabook/sulabook/internal/core/ports"
	"github.com/sulabook/sulabook/internal/core/view"
)

func newBookCommand(app *App) *cobra.Command {
	var (
		date   string
		timeAt string
		guests int
	)

	cmd := &cobra.Command{
		Use:   "book <service-id>",
		Short: "Book a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			services, err := app.catalogServices()
			if err != nil {
				return err
			}

			serviceID := args[0]
			for _, svc := range services {
				if svc.ID != serviceID {
					continue
				}
				booking, err := app.bookings.AddBooking(cmd.Context(), sess, ports.BookingInput{
					ServiceID:    svc.ID,
					ServiceTitle: svc.Title,
					ServiceImage: svc.Image,
					Price:        svc.Price,
					Date:         date,
					Time:         timeAt,
					Guests:       guests,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Booked %s on %s at %s for %d guest(s). Booking id: %s\n",
					booking.ServiceTitle, booking.Date, booking.Time, booking.Guests, booking.ID)
				return nil
			}
			return fmt.Errorf("unknown service %q", serviceID)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "booking date, e.g. 2026-09-14")
	cmd.Flags().StringVar(&timeAt, "time", "", "booking time, e.g. 14:00")
	cmd.Flags().IntVar(&guests, "guests", 1, "number of guests")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newBookingsCommand(app *App) *cobra.Command {
	var (
		status string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			mine := app.bookings.UserBookings(sess)
			filtered := view.FilterBookings(mine, view.BookingQuery{
				Status: status,
				SortBy: sortBy,
			})

			if len(filtered) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bookings yet.")
				return nil
			}
			for _, b := range filtered {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s  %s %s  %d guest(s)  $%.0f  [%s]\n",
					b.ID, b.ServiceTitle, b.Date, b.Time, b.Guests, b.Price, b.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", view.StatusAll, "filter by status (all|confirmed|cancelled)")
	cmd.Flags().StringVar(&sortBy, "sort", view.SortNewest,
		fmt.Sprintf("sort order (%s)", strings.Join([]string{view.SortNewest, view.SortOldest, view.SortPrice}, "|")))

	return cmd
}

func newCancelCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(); err != nil {
				return err
			}
			if err := app.bookings.CancelBooking(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Booking %s cancelled.\n", args[0])
			return nil
		},
	}
}

func newStatsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your booking totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			stats := view.Stats(app.bookings.UserBookings(sess))
			fmt.Fprintf(cmd.OutOrStdout(), "Total bookings: %d\n", stats.Total)
			fmt.Fprintf(cmd.OutOrStdout(), "Confirmed:      %d\n", stats.Confirmed)
			fmt.Fprintf(cmd.OutOrStdout(), "Cancelled:      %d\n", stats.Cancelled)
			fmt.Fprintf(cmd.OutOrStdout(), "Total spent:    $%.0f\n", stats.TotalSpent)
			return nil
		},
	}
}
