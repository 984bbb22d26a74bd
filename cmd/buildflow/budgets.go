package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/core/domain"
)

func budgetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budget lines",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return a.requireRoute("/budgets")
		},
	}

	cmd.AddCommand(budgetsListCmd(a), budgetsCreateCmd(a), budgetsDeleteCmd(a))
	return cmd
}

func budgetsListCmd(a *app) *cobra.Command {
	var filter domain.BudgetFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budget lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			budgets, err := a.api.Budgets(cmd.Context(), filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(budgets))
			for _, b := range budgets {
				rows = append(rows, []string{
					strconv.Itoa(b.ID), strconv.Itoa(b.ProjectID), b.Category,
					money(b.PlannedAmount), money(b.ActualAmount), money(b.Variance), percent(b.VariancePercentage),
				})
			}
			table(cmd.OutOrStdout(), []string{"ID", "PROJECT", "CATEGORY", "PLANNED", "ACTUAL", "VARIANCE", "VAR%"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&filter.ProjectID, "project", 0, "filter by project id")
	cmd.Flags().StringVar(&filter.Category, "category", "", "filter by category")
	return cmd
}

func budgetsCreateCmd(a *app) *cobra.Command {
	var in domain.BudgetInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a budget line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInput(in); err != nil {
				return err
			}
			b, err := a.api.CreateBudget(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created budget #%d %s\n", b.ID, b.Category)
			return nil
		},
	}

	cmd.Flags().IntVar(&in.ProjectID, "project", 0, "project id (required)")
	cmd.Flags().StringVar(&in.Category, "category", "", "budget category (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().Float64Var(&in.PlannedAmount, "planned", 0, "planned amount")
	cmd.Flags().Float64Var(&in.ActualAmount, "actual", 0, "actual amount")
	cmd.Flags().StringVar(&in.BudgetDate, "date", "", "budget date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func budgetsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "id must be an integer"}
			}
			if err := a.api.DeleteBudget(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted budget #%d\n", id)
			return nil
		},
	}
}
