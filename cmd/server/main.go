package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chrisschwer/league-simulator/internal/httpapi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var port int

	root := &cobra.Command{
		Use:   "league-simulator-server",
		Short: "Serves the league standings Monte Carlo simulator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(port)
		},
	}

	defaultPort := 8080
	if v := os.Getenv("PORT"); v != "" {
		fmt.Sscanf(v, "%d", &defaultPort)
	}
	root.Flags().IntVar(&port, "port", defaultPort, "HTTP port to listen on")

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Fatal("server exited with error")
	}
}

func run(port int) error {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: httpapi.New(log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", port).Info("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
