package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/core/domain"
)

func projectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage construction projects",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return a.requireRoute("/projects")
		},
	}

	cmd.AddCommand(projectsListCmd(a), projectsGetCmd(a), projectsCreateCmd(a), projectsUpdateCmd(a), projectsDeleteCmd(a))
	return cmd
}

func projectsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := a.api.Projects(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					strconv.Itoa(p.ID), p.Name, string(p.Status),
					money(p.TotalBudget), money(p.SpentAmount), percent(p.BudgetUtilization),
				})
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "STATUS", "BUDGET", "SPENT", "UTILIZATION"}, rows)
			return nil
		},
	}
}

func projectsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "id must be an integer"}
			}
			p, err := a.api.Project(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%d %s [%s]\n", p.ID, p.Name, p.Status)
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			fmt.Fprintf(out, "location: %s\n", p.Location)
			fmt.Fprintf(out, "dates: %s → %s\n", p.StartDate, p.PlannedEndDate)
			fmt.Fprintf(out, "budget: %s spent %s (%s), remaining %s\n",
				money(p.TotalBudget), money(p.SpentAmount), percent(p.BudgetUtilization), money(p.RemainingBudget))
			return nil
		},
	}
}

func projectsCreateCmd(a *app) *cobra.Command {
	var in domain.ProjectInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInput(in); err != nil {
				return err
			}
			p, err := a.api.CreateProject(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created project #%d %s\n", p.ID, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "project name (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().StringVar(&in.Status, "status", "", "planning|active|on_hold|completed|cancelled")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.PlannedEndDate, "end", "", "planned end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&in.TotalBudget, "budget", 0, "total budget")
	cmd.Flags().StringVar(&in.Location, "location", "", "site location")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func projectsUpdateCmd(a *app) *cobra.Command {
	var in domain.ProjectInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "id must be an integer"}
			}
			if err := validateInput(in); err != nil {
				return err
			}
			p, err := a.api.UpdateProject(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated project #%d %s\n", p.ID, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "project name (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().StringVar(&in.Status, "status", "", "planning|active|on_hold|completed|cancelled")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.PlannedEndDate, "end", "", "planned end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&in.TotalBudget, "budget", 0, "total budget")
	cmd.Flags().StringVar(&in.Location, "location", "", "site location")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func projectsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "id must be an integer"}
			}
			if err := a.api.DeleteProject(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted project #%d\n", id)
			return nil
		},
	}
}
