package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fcfs-scheduler/api"
	"fcfs-scheduler/config"
	"fcfs-scheduler/internal/board"
	"fcfs-scheduler/internal/logger"
)

const serviceName = "fcfs-scheduler"

type serveCommand struct {
	configFilePath string
	port           int
}

func ServeCommand() *cobra.Command {
	serve := &serveCommand{}

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the scheduling http api",
		Example: "fcfs serve --config ./config.yaml",
		Args:    cobra.NoArgs,
		RunE:    serve.RunE,
	}

	cmd.Flags().StringVarP(&serve.configFilePath, "config", "c", config.DefaultPath, "File path for server configuration")
	cmd.Flags().IntVarP(&serve.port, "port", "p", 0, "Port to listen on, overrides the config file")
	return cmd
}

func (s *serveCommand) RunE(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(s.configFilePath)
	if err != nil {
		return err
	}
	if s.port != 0 {
		cfg.Port = s.port
	}

	logger.SetupLogger(cfg.LogLevel)
	log := logger.New(serviceName)
	if cfg.IsDevelopment() {
		log = logger.NewConsole(serviceName)
	}

	handler := api.NewSchedulerHandlerImpl(board.New(cfg.RealisticMode), log)
	app := api.NewApp(handler, log)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Str("action", "server_shutdown").Msg("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error().Msg("Shutdown failed")
		}
	}()

	log.Info().
		Str("action", "server_start").
		Int("port", cfg.Port).
		Bool("realistic_mode", cfg.RealisticMode).
		Msg("Starting scheduler api")

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		return fmt.Errorf("server failed to start on port %d: %w", cfg.Port, err)
	}
	return nil
}
