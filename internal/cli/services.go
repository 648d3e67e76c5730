package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sulabook/sulabook/internal/core/view"
)

func newServicesCommand(app *App) *cobra.Command {
	var (
		search   string
		category string
		sortBy   string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "services",
		Short: "Browse the service catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := app.catalogServices()
			if err != nil {
				return err
			}

			filtered := view.FilterServices(services, view.CatalogQuery{
				Search:   search,
				Category: category,
				SortBy:   sortBy,
			})
			pageItems, totalPages := view.Paginate(filtered, page, app.cfg.PageSize)

			if len(pageItems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No services found matching your criteria.")
				return nil
			}

			sess := app.sessions.Current()
			for _, svc := range pageItems {
				marker := " "
				if app.bookings.IsFavorite(sess, svc.ID) {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s  %-30s  %-12s  $%.0f  %.1f★ (%d)\n",
					marker, svc.ID, svc.Title, svc.Category, svc.Price, svc.Rating, svc.Reviews)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d services)\n", page, totalPages, len(filtered))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search in title, description and location")
	cmd.Flags().StringVar(&category, "category", view.CategoryAll, "filter by category")
	cmd.Flags().StringVar(&sortBy, "sort", view.SortDefault,
		fmt.Sprintf("sort order (%s)", strings.Join([]string{view.SortDefault, view.SortPriceAsc, view.SortPriceDesc, view.SortRating, view.SortName}, "|")))
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}

func newCategoriesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := app.catalogServices()
			if err != nil {
				return err
			}
			for _, cat := range view.Categories(services) {
				fmt.Fprintln(cmd.OutOrStdout(), cat)
			}
			return nil
		},
	}
}
