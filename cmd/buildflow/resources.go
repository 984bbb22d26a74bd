package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/core/domain"
)

func resourcesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Manage project resources",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return a.requireRoute("/resources")
		},
	}

	cmd.AddCommand(resourcesListCmd(a), resourcesCreateCmd(a), resourcesDeleteCmd(a))
	return cmd
}

func resourcesListCmd(a *app) *cobra.Command {
	var filter domain.ResourceFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := a.api.Resources(cmd.Context(), filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(resources))
			for _, r := range resources {
				rows = append(rows, []string{
					strconv.Itoa(r.ID), strconv.Itoa(r.ProjectID), r.Name, r.ResourceType,
					fmt.Sprintf("%.1f %s", r.Quantity, r.Unit), money(r.UnitCost), money(r.TotalCost), r.Supplier,
				})
			}
			table(cmd.OutOrStdout(), []string{"ID", "PROJECT", "NAME", "TYPE", "QTY", "UNIT COST", "TOTAL", "SUPPLIER"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&filter.ProjectID, "project", 0, "filter by project id")
	cmd.Flags().StringVar(&filter.ResourceType, "type", "", "material|equipment|labor")
	return cmd
}

func resourcesCreateCmd(a *app) *cobra.Command {
	var in domain.ResourceInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Allocate a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInput(in); err != nil {
				return err
			}
			r, err := a.api.CreateResource(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created resource #%d %s (total %s)\n", r.ID, r.Name, money(r.TotalCost))
			return nil
		},
	}

	cmd.Flags().IntVar(&in.ProjectID, "project", 0, "project id (required)")
	cmd.Flags().StringVar(&in.Name, "name", "", "resource name (required)")
	cmd.Flags().StringVar(&in.ResourceType, "type", "", "material|equipment|labor (required)")
	cmd.Flags().Float64Var(&in.Quantity, "quantity", 0, "quantity")
	cmd.Flags().StringVar(&in.Unit, "unit", "", "unit of measure")
	cmd.Flags().Float64Var(&in.UnitCost, "unit-cost", 0, "cost per unit")
	cmd.Flags().StringVar(&in.Supplier, "supplier", "", "supplier")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func resourcesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "id must be an integer"}
			}
			if err := a.api.DeleteResource(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted resource #%d\n", id)
			return nil
		},
	}
}
