package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Rohit242003/timesheet-dashboard/internal/app"
	"github.com/Rohit242003/timesheet-dashboard/internal/session/sqlite"
	"github.com/Rohit242003/timesheet-dashboard/internal/tui"
	"github.com/Rohit242003/timesheet-dashboard/pkg/logger"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run the interactive dashboard",
	Long:  `Start the interactive timesheet dashboard in this terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDashboard()
	},
}

func runDashboard() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.L()

	store, err := sqlite.New(cfg.State.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state store: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, store, tui.New(), log)
	if err := application.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("dashboard exited with error", "error", err)
		os.Exit(1)
	}
}
