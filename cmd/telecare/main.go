package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/telecare/telecare/internal/config"
	"github.com/telecare/telecare/internal/domain/auth"
	"github.com/telecare/telecare/internal/domain/consultation"
	"github.com/telecare/telecare/internal/domain/lab"
	"github.com/telecare/telecare/internal/domain/notification"
	"github.com/telecare/telecare/internal/domain/symptom"
	"github.com/telecare/telecare/internal/mock"
	"github.com/telecare/telecare/internal/platform/logging"
	"github.com/telecare/telecare/internal/platform/rest"
	"github.com/telecare/telecare/internal/platform/session"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "telecare",
		Short: "Telehealth client core and mock backend",
	}

	rootCmd.AddCommand(mockdCmd())
	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func mockdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mockd",
		Short: "Serve the in-memory mock backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMockServer()
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Drive the domain stores against a running backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runMockServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.IsDev())

	gateway := mock.NewGateway(mock.Options{
		DemoEmail:    cfg.DemoEmail,
		DemoPassword: cfg.DemoPassword,
		TokenSecret:  cfg.MockTokenSecret,
		MinDelay:     time.Duration(cfg.MockMinDelayMS) * time.Millisecond,
		MaxDelay:     time.Duration(cfg.MockMaxDelayMS) * time.Millisecond,
	}, logger)
	server := mock.NewServer(gateway, logger)

	go func() {
		logger.Info().Str("addr", cfg.MockAddr).Msg("starting mock backend")
		if err := server.Start(cfg.MockAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down mock backend")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("mock backend stopped")
	return nil
}

// runDemo walks the main patient flows end to end and prints what each
// store holds after every step.
func runDemo() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.IsDev())

	api := rest.NewClient(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, logger)
	sessions := session.NewStore(cfg.SessionFile)

	authStore := auth.NewStore(auth.NewHTTPClient(api), sessions, logger)
	symptomStore := symptom.NewStore(symptom.NewHTTPClient(api), logger)
	consultStore := consultation.NewStore(consultation.NewHTTPClient(api), logger)
	labStore := lab.NewStore(lab.NewHTTPClient(api), logger)
	notifStore := notification.NewStore(notification.NewHTTPClient(api), logger)

	ctx := context.Background()

	if err := authStore.Bootstrap(ctx); err != nil {
		return err
	}
	if !authStore.State().IsAuthenticated {
		fmt.Printf("logging in as %s\n", cfg.DemoEmail)
		if err := authStore.Login(ctx, cfg.DemoEmail, cfg.DemoPassword); err != nil {
			return err
		}
	} else {
		fmt.Println("restored persisted session")
	}
	user := authStore.State().User
	fmt.Printf("authenticated as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	token := authStore.Token()

	if err := symptomStore.FetchReports(ctx, token); err != nil {
		return err
	}
	fmt.Printf("symptom reports: %d\n", len(symptomStore.Reports()))

	if err := consultStore.FetchDoctors(ctx, token); err != nil {
		return err
	}
	for _, d := range consultStore.AvailableDoctors() {
		marker := " "
		if d.IsAvailable {
			marker = "*"
		}
		fmt.Printf("  %s %s (%s)\n", marker, d.Name, d.Specialization)
	}

	if err := consultStore.FetchConsultations(ctx, token); err != nil {
		return err
	}
	fmt.Printf("consultations: %d\n", len(consultStore.Consultations()))

	if err := labStore.FetchResults(ctx, token); err != nil {
		return err
	}
	fmt.Printf("lab results: %d\n", len(labStore.Results()))

	if err := notifStore.FetchNotifications(ctx, token); err != nil {
		return err
	}
	fmt.Printf("notifications: %d (%d unread)\n", len(notifStore.Notifications()), notifStore.UnreadCount())

	return nil
}
