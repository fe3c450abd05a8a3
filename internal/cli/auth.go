package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btechwala999/Ignitia-client/internal/api"
	"github.com/btechwala999/Ignitia-client/internal/app"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := a.Session.Login(ctx, email, password); err != nil {
					return fmt.Errorf("login failed: %s", api.Message(err))
				}
				st := a.Session.State()
				if st.User != nil {
					fmt.Printf("Signed in as %s <%s> (%s)\n", st.User.Name, st.User.Email, st.User.Role)
				} else {
					fmt.Println("Signed in (profile not available yet)")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func registerCmd() *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := a.Session.Register(ctx, name, email, password, role); err != nil {
					return fmt.Errorf("registration failed: %s", api.Message(err))
				}
				fmt.Println("Account created.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", api.RoleStudent, "account role (admin, teacher, student)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				a.Session.Logout()
				fmt.Println("Signed out.")
				return nil
			})
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				st := a.Session.State()
				if st.User == nil {
					fmt.Println("Signed in, profile unknown.")
					return nil
				}
				return printJSON(st.User)
			})
		},
	}
}

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account profile",
	}
	cmd.AddCommand(profileUpdateCmd(), profilePasswdCmd())
	return cmd
}

func profileUpdateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := a.Session.UpdateProfile(ctx, name); err != nil {
					return fmt.Errorf("update failed: %s", api.Message(err))
				}
				fmt.Println("Profile updated.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func profilePasswdCmd() *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if err := a.Session.ChangePassword(ctx, current, next); err != nil {
					return fmt.Errorf("password change failed: %s", api.Message(err))
				}
				fmt.Println("Password changed.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}
