package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/account"
)

func newSessionCommand(e *env) *cobra.Command {
	var start bool

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show or start the device session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if start {
				owner, err := e.core.Session.StartAnonymousSession(ctx)
				if err != nil {
					return err
				}
				okColor.Fprintf(out, "Anonymous session started: %s\n", owner)
				return nil
			}

			owner, ok, err := e.core.Session.CurrentOwner(ctx)
			if err != nil {
				return err
			}
			if !ok {
				warnColor.Fprintln(out, "No session. Run 'diary session --start' or 'diary login'.")
				return nil
			}
			kind := "anonymous"
			if owner.IsUser() {
				kind = "member"
			}
			fmt.Fprintf(out, "%s (%s)\n", owner, kind)
			return nil
		},
	}
	cmd.Flags().BoolVar(&start, "start", false, "start an anonymous session if none is bound")
	return cmd
}

func newRegisterCommand(e *env) *cobra.Command {
	var in account.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and adopt the current diary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.PasswordConfirm == "" {
				in.PasswordConfirm = in.Password
			}
			id, err := e.core.Account.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			okColor.Fprintf(cmd.OutOrStdout(), "Registered account %d as %s\n", id, domain.NewUserOwner(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Nickname, "nickname", "", "display name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (10-15 letters and digits)")
	cmd.Flags().StringVar(&in.PasswordConfirm, "confirm", "", "password confirmation (defaults to --password)")
	return cmd
}

func newLoginCommand(e *env) *cobra.Command {
	var in account.LoginInput

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and adopt the current anonymous diary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := e.core.Account.Login(cmd.Context(), in)
			if err != nil {
				return err
			}
			okColor.Fprintf(cmd.OutOrStdout(), "Welcome back, %s\n", acc.Nickname)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	return cmd
}

func newLogoutCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Unbind the current owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.core.Account.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWithdrawCommand(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Delete the signed-in account and all of its data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("withdraw deletes every entry; pass --yes to confirm")
			}
			if !e.core.Account.Withdraw(cmd.Context()) {
				return domain.ErrAuthFailed
			}
			okColor.Fprintln(cmd.OutOrStdout(), "Account deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func newProfileCommand(e *env) *cobra.Command {
	var nickname, image string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("nickname") {
				if err := e.core.Account.UpdateNickname(ctx, nickname); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("image") {
				if err := e.core.Account.UpdateProfileImage(ctx, image); err != nil {
					return err
				}
			}

			p, err := e.core.Account.Profile(ctx)
			if err != nil {
				return err
			}
			days, err := e.core.Account.ServiceDays(ctx)
			if err != nil {
				return err
			}

			name := p.Nickname
			if !p.IsMember {
				name = "(anonymous)"
			}
			titleColor.Fprintln(out, name)
			if p.Email != "" {
				fmt.Fprintf(out, "  email:  %s\n", p.Email)
			}
			fmt.Fprintf(out, "  image:  %s\n", p.ProfileImageURI)
			if p.SelectedBadge != nil {
				fmt.Fprintf(out, "  badge:  %s\n", p.SelectedBadge.Name)
			}
			fmt.Fprintf(out, "  day %d with the diary\n", days)
			return nil
		},
	}
	cmd.Flags().StringVar(&nickname, "nickname", "", "set a new nickname")
	cmd.Flags().StringVar(&image, "image", "", "set a new profile image URI")
	return cmd
}
