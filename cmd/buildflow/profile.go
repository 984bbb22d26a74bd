package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/core/domain"
)

func profileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update your profile",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return a.requireRoute("/profile")
		},
	}

	cmd.AddCommand(profileGetCmd(a), profileUpdateCmd(a))
	return cmd
}

func profileGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.api.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s\n", u.Name, u.Email, u.Role)
			return nil
		},
	}
}

func profileUpdateCmd(a *app) *cobra.Command {
	var in domain.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Name == "" && in.Email == "" {
				return &domain.ValidationError{Message: "nothing to update"}
			}
			if err := validateInput(in); err != nil {
				return err
			}
			u, err := a.api.UpdateProfile(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "profile updated: %s <%s>\n", u.Name, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	return cmd
}
