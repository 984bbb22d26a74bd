package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/authctx"
	"github.com/buildflow/client/internal/core/domain"
)

func loginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the BuildFlow API",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := domain.Credentials{Username: username, Password: password}
			if creds.Username == "" || creds.Password == "" {
				var err error
				if creds, err = promptCredentials(cmd, creds); err != nil {
					return err
				}
			}

			// Form validation stays in the rendering layer; invalid
			// input never reaches the session or gateway.
			if err := validateInput(creds); err != nil {
				return err
			}

			_, dest, err := authctx.Use().Login(cmd.Context(), creds)
			if err != nil {
				var authErr *domain.AuthenticationError
				if errors.As(err, &authErr) {
					return fmt.Errorf("login rejected: %s", authErr.Message)
				}
				return err
			}

			user := authctx.Use().Current().User
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Role)
			a.nav.NavigateTo(dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

// promptCredentials asks for whichever of the two fields is missing.
func promptCredentials(cmd *cobra.Command, creds domain.Credentials) (domain.Credentials, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	if creds.Username == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return creds, fmt.Errorf("read username: %w", err)
		}
		creds.Username = strings.TrimSpace(line)
	}
	if creds.Password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return creds, fmt.Errorf("read password: %w", err)
		}
		creds.Password = strings.TrimSpace(line)
	}
	return creds, nil
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dest := authctx.Use().Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			a.nav.NavigateTo(dest)
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := authctx.Use().Current()
			if !sess.IsAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			u := sess.User
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s\n", u.Name, u.Email, u.Role)
			if u.WorkerName != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "worker: %s\n", u.WorkerName)
			}
			if len(u.ManagedProjects) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "managed projects: %v\n", u.ManagedProjects)
			}
			return nil
		},
	}
}

func demoUsersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo-users",
		Short: "List the sample accounts for quick login",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.api.DemoUsers(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{u.Username, u.Role, u.Name, u.Hint})
			}
			table(cmd.OutOrStdout(), []string{"USERNAME", "ROLE", "NAME", "HINT"}, rows)
			return nil
		},
	}
}
