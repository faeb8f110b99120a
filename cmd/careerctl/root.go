package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "careerctl",
	Short:         "Manage CareerLaunch notifications and recruiter data",
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		if a := appFrom(cmd.Context()); a != nil {
			return a.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd, metricsCmd, notificationsCmd)
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
