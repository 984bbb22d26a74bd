package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/authctx"
	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/routing"
)

func navCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nav",
		Short: "Show the menu for the current role",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, ok := authctx.Use().Current().Role()
			if !ok {
				a.nav.NavigateTo(domain.LoginRoute)
				return fmt.Errorf("not logged in (run \"buildflow login\")")
			}
			rows := [][]string{}
			for _, entry := range routing.MenuFor(role) {
				rows = append(rows, []string{entry.Label, entry.Path})
			}
			table(cmd.OutOrStdout(), []string{"LABEL", "PATH"}, rows)
			return nil
		},
	}
}

func openCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Run the route guard for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			access := routing.Decide(authctx.Use().Current(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", access.Decision)
			if access.Redirect != "" {
				a.nav.NavigateTo(access.Redirect)
			}
			return nil
		},
	}
}
