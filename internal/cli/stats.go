package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btechwala999/Ignitia-client/internal/api"
	"github.com/btechwala999/Ignitia-client/internal/app"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Usage analytics",
	}
	cmd.AddCommand(
		statsOverallCmd(),
		statsUserCmd(),
		statsRecentCmd(),
		statsTrendingCmd(),
		statsDifficultyCmd(),
	)
	return cmd
}

func statsOverallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overall",
		Short: "Platform-wide statistics (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				stats, err := a.Client.OverallStats(ctx)
				if err != nil {
					return fmt.Errorf("stats failed: %s", api.Message(err))
				}
				return printJSON(stats)
			})
		},
	}
}

func statsUserCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Per-user statistics (defaults to the current user)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				stats, err := a.Client.UserStats(ctx, userID)
				if err != nil {
					return fmt.Errorf("stats failed: %s", api.Message(err))
				}
				return printJSON(stats)
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user to report on")
	return cmd
}

func statsRecentCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				activity, err := a.Client.RecentActivity(ctx, userID)
				if err != nil {
					return fmt.Errorf("stats failed: %s", api.Message(err))
				}
				return printJSON(activity)
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user to report on")
	return cmd
}

func statsTrendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Trending subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				subjects, err := a.Client.TrendingSubjects(ctx)
				if err != nil {
					return fmt.Errorf("stats failed: %s", api.Message(err))
				}
				return printJSON(subjects)
			})
		},
	}
}

func statsDifficultyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difficulty",
		Short: "Usage by difficulty level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				stats, err := a.Client.DifficultyStats(ctx)
				if err != nil {
					return fmt.Errorf("stats failed: %s", api.Message(err))
				}
				return printJSON(stats)
			})
		},
	}
}
