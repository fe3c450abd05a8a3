// Package cli implements the ignitia command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/btechwala999/Ignitia-client/internal/app"
	"github.com/btechwala999/Ignitia-client/internal/config"
	"github.com/btechwala999/Ignitia-client/internal/logger"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "ignitia",
		Short:         "Command-line client for the Ignitia question paper platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		profileCmd(),
		papersCmd(),
		statsCmd(),
		webCmd(),
	)
	return root
}

func Execute() {
	logger.Init()
	if err := Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withApp assembles the application, runs fn and releases resources.
func withApp(ctx context.Context, fn func(context.Context, *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("cleanup failed", map[string]any{"error": err.Error()})
		}
	}()

	return fn(ctx, a)
}

// withSession additionally bootstraps and requires an authenticated
// session before fn runs.
func withSession(ctx context.Context, fn func(context.Context, *app.App) error) error {
	return withApp(ctx, func(ctx context.Context, a *app.App) error {
		st := a.Session.Bootstrap(ctx)
		if !st.Authenticated {
			return fmt.Errorf("not signed in; run `ignitia login` first")
		}
		return fn(ctx, a)
	})
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
