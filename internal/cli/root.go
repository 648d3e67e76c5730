// Package cli is the display layer: cobra commands wiring the session and
// booking services to a terminal.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sulabook/sulabook/internal/core/domain"
	"github.com/sulabook/sulabook/internal/core/ports"
	"github.com/sulabook/sulabook/internal/core/service"
	"github.com/sulabook/sulabook/internal/infrastructure/catalog"
	"github.com/sulabook/sulabook/internal/infrastructure/config"
	"github.com/sulabook/sulabook/internal/infrastructure/db/sqlite"
	"github.com/sulabook/sulabook/pkg/logger"
)

// App holds the wired dependencies shared by all commands.
type App struct {
	Verbose bool

	cfg      *config.Config
	log      zerolog.Logger
	store    *sqlite.Store
	sessions ports.SessionService
	bookings ports.BookingService

	services []domain.Service
}

// NewRootCommand creates the sulabook root command.
func NewRootCommand() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "sulabook",
		Short:         "Local booking desk",
		Long:          "Browse a service catalog, manage your account and keep bookings and favorites, all stored locally.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.bootstrap(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.shutdown()
		},
	}

	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(newRegisterCommand(app))
	cmd.AddCommand(newLoginCommand(app))
	cmd.AddCommand(newLogoutCommand(app))
	cmd.AddCommand(newWhoamiCommand(app))
	cmd.AddCommand(newProfileCommand(app))
	cmd.AddCommand(newServicesCommand(app))
	cmd.AddCommand(newCategoriesCommand(app))
	cmd.AddCommand(newBookCommand(app))
	cmd.AddCommand(newBookingsCommand(app))
	cmd.AddCommand(newCancelCommand(app))
	cmd.AddCommand(newFavoriteCommand(app))
	cmd.AddCommand(newStatsCommand(app))

	return cmd
}

// bootstrap loads configuration, opens the store, constructs the services
// and restores any persisted session.
func (a *App) bootstrap(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.Verbose {
		level = "debug"
	}
	a.log = logger.Init(logger.Options{
		Level:  level,
		Pretty: cfg.Env == "development",
	})

	store, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	a.store = store

	a.sessions = service.NewSessionService(store, a.log)
	bookings := service.NewBookingService(store, a.log)
	if err := bookings.Load(ctx); err != nil {
		return err
	}
	a.bookings = bookings

	a.sessions.Restore(ctx)
	return nil
}

func (a *App) shutdown() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// catalogServices loads the host-supplied catalog on first use.
func (a *App) catalogServices() ([]domain.Service, error) {
	if a.services != nil {
		return a.services, nil
	}
	services, err := catalog.Load(a.cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	a.services = services
	return services, nil
}

// requireSession returns the current session or a login hint.
func (a *App) requireSession() (*domain.Session, error) {
	sess := a.sessions.Current()
	if sess == nil {
		return nil, fmt.Errorf("%w: log in first", domain.ErrNoSession)
	}
	return sess, nil
}
