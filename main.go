package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro-pos-service/internal/config"
	httpapi "bistro-pos-service/internal/http"
	"bistro-pos-service/internal/logger"
	"bistro-pos-service/internal/queue"
	"bistro-pos-service/internal/seed"
	"bistro-pos-service/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bistro-pos-service",
		Short: "Mock restaurant POS backend over a JSON document store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Generate a fresh fake database file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatal("store open failed", zap.String("path", cfg.StorePath), zap.Error(err))
	}

	var queueClient *queue.Client
	if cfg.RabbitMQURL != "" {
		qc, err := queue.New(cfg.RabbitMQURL)
		if err != nil {
			if cfg.Env == "production" {
				log.Fatal("rabbitmq connection failed", zap.Error(err))
			}
			log.Warn("rabbitmq connection failed; continuing without events", zap.Error(err))
			qc = nil
		}
		if qc != nil {
			if err := qc.EnsureExchange(queue.EventsExchange); err != nil {
				if cfg.Env == "production" {
					log.Fatal("rabbitmq exchange failed", zap.Error(err))
				}
				log.Warn("rabbitmq exchange failed; continuing without events", zap.Error(err))
				_ = qc.Close()
				qc = nil
			}
		}
		queueClient = qc
		if qc != nil {
			defer qc.Close()
			log.Info("rabbitmq events enabled", zap.String("exchange", queue.EventsExchange))
		}
	} else {
		log.Info("order events disabled (RABBITMQ_URL is empty)")
	}

	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(st, log, cfg, queueClient),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("pos service listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StorePath))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	return nil
}

func runSeed() error {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	data, err := seed.Generate(time.Now())
	if err != nil {
		return fmt.Errorf("generate seed data: %w", err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		// Seeding replaces the file anyway; a corrupt one is not fatal.
		log.Warn("existing store unreadable, overwriting", zap.String("path", cfg.StorePath), zap.Error(err))
		st = store.New(cfg.StorePath)
	}
	if err := st.Replace(data); err != nil {
		return fmt.Errorf("write seed data: %w", err)
	}

	log.Info("seeded database",
		zap.String("path", cfg.StorePath),
		zap.Int("menuItems", len(data.MenuItems)),
		zap.Int("orders", len(data.Orders)),
		zap.Int("orderHistory", len(data.OrderHistory)),
	)
	return nil
}
