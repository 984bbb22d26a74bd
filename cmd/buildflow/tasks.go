package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/core/domain"
)

func tasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage project tasks",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return a.requireRoute("/tasks")
		},
	}

	cmd.AddCommand(tasksListCmd(a), tasksCreateCmd(a), tasksUpdateCmd(a), tasksDeleteCmd(a), tasksOverdueCmd(a))
	return cmd
}

func tasksListCmd(a *app) *cobra.Command {
	var filter domain.TaskFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.api.Tasks(cmd.Context(), filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				overdue := ""
				if t.IsOverdue {
					overdue = "OVERDUE"
				}
				rows = append(rows, []string{
					strconv.Itoa(t.ID), strconv.Itoa(t.ProjectID), t.Name, t.Status,
					t.Priority, percent(t.ProgressPercentage), t.AssignedTo, overdue,
				})
			}
			table(cmd.OutOrStdout(), []string{"ID", "PROJECT", "NAME", "STATUS", "PRIORITY", "PROGRESS", "ASSIGNEE", ""}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&filter.ProjectID, "project", 0, "filter by project id")
	cmd.Flags().StringVar(&filter.Status, "status", "", "filter by status")
	return cmd
}

func tasksCreateCmd(a *app) *cobra.Command {
	var in domain.TaskInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInput(in); err != nil {
				return err
			}
			t, err := a.api.CreateTask(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created task #%d %s\n", t.ID, t.Name)
			return nil
		},
	}

	addTaskFlags(cmd, &in)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func tasksUpdateCmd(a *app) *cobra.Command {
	var in domain.TaskInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "id must be an integer"}
			}
			if err := validateInput(in); err != nil {
				return err
			}
			t, err := a.api.UpdateTask(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated task #%d %s\n", t.ID, t.Name)
			return nil
		},
	}

	addTaskFlags(cmd, &in)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func addTaskFlags(cmd *cobra.Command, in *domain.TaskInput) {
	cmd.Flags().IntVar(&in.ProjectID, "project", 0, "project id (required)")
	cmd.Flags().StringVar(&in.Name, "name", "", "task name (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().StringVar(&in.Status, "status", "", "pending|in_progress|completed|blocked")
	cmd.Flags().StringVar(&in.Priority, "priority", "", "low|medium|high|critical")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.PlannedEndDate, "end", "", "planned end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&in.ProgressPercentage, "progress", 0, "progress percentage")
	cmd.Flags().StringVar(&in.AssignedTo, "assignee", "", "assigned worker")
}

func tasksDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "id must be an integer"}
			}
			if err := a.api.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted task #%d\n", id)
			return nil
		},
	}
}

func tasksOverdueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue <project-id>",
		Short: "List a project's overdue tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.ValidationError{Message: "project-id must be an integer"}
			}
			tasks, err := a.api.OverdueTasks(cmd.Context(), id)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{strconv.Itoa(t.ID), t.Name, t.PlannedEndDate, t.AssignedTo})
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "DUE", "ASSIGNEE"}, rows)
			return nil
		},
	}
}
