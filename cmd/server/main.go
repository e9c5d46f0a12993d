package main

import (
	"fmt"
	"log"
	"os"

	"booksmart/internal/auth"
	"booksmart/internal/config"
	"booksmart/internal/database"
	"booksmart/internal/handlers"
	"booksmart/internal/logger"
	"booksmart/internal/server"
	"booksmart/internal/services"
	"booksmart/internal/summarizer"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "booksmart",
		Short: "Calendar and task management backend",
	}
	rootCmd.AddCommand(serveCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			appLogger, err := logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer appLogger.Close()

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("init database: %w", err)
			}

			tokens := auth.NewManager(cfg.JWT)
			notifier := services.NewNotifier(services.NewSendGridSender(cfg.SendGrid))

			aiClient := summarizer.NewOpenAIClient(cfg.OpenAI)
			store, err := summarizer.NewFileStore(cfg.Summarizer.DataDir, aiClient)
			if err != nil {
				return fmt.Errorf("init retrieval store: %w", err)
			}
			summaries := summarizer.NewService(store, aiClient)

			h := handlers.New(db, appLogger, tokens, notifier, summaries)
			router, err := server.NewRouter(cfg, appLogger, h, tokens)
			if err != nil {
				return fmt.Errorf("assemble router: %w", err)
			}

			appLogger.Infow("server starting", "addr", cfg.Server.Addr())
			return router.Run(cfg.Server.Addr())
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Wipe the store and load development fixture data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("init database: %w", err)
			}

			if err := database.Seed(db); err != nil {
				return fmt.Errorf("seed database: %w", err)
			}
			log.Println("Database seeded")
			return nil
		},
	}
}
