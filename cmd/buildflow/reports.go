package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/core/domain"
)

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for your role",
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := a.dashboardRoute()
			if err != nil {
				a.nav.NavigateTo(domain.LoginRoute)
				return fmt.Errorf("not logged in (run \"buildflow login\")")
			}
			if err := a.requireRoute(route); err != nil {
				return err
			}

			stats, err := a.api.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Projects: %d total, %d active, %d completed\n",
				stats.TotalProjects, stats.ActiveProjects, stats.CompletedProjects)
			fmt.Fprintf(out, "Budget:   %s of %s spent (%s)\n",
				money(stats.TotalSpent), money(stats.TotalBudget), percent(stats.BudgetUtilization))
			fmt.Fprintf(out, "Tasks:    %d total, %d completed, %d overdue (%s done)\n",
				stats.TotalTasks, stats.CompletedTasks, stats.OverdueTasks, percent(stats.TaskCompletionRate))
			return nil
		},
	}
}

func teamCmd(a *app) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show team performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute("/team-performance"); err != nil {
				return err
			}

			report, err := a.api.TeamPerformance(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(report.Performance))
			for _, p := range report.Performance {
				rows = append(rows, []string{
					p.WorkerName, strconv.Itoa(p.TotalTasks), strconv.Itoa(p.CompletedTasks),
					percent(p.AvgProgress), percent(p.CompletionRate),
				})
			}
			table(cmd.OutOrStdout(), []string{"WORKER", "TASKS", "DONE", "AVG PROGRESS", "COMPLETION"}, rows)
			fmt.Fprintf(cmd.OutOrStdout(), "%d team members\n", report.TeamMembers)
			return nil
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "narrow to one project")
	return cmd
}

func activityCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the recent activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoute("/users"); err != nil {
				return err
			}

			entries, err := a.api.ActivityLog(cmd.Context(), limit)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Timestamp, e.User, e.Action, e.Details})
			}
			table(cmd.OutOrStdout(), []string{"TIME", "USER", "ACTION", "DETAILS"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "number of entries")
	return cmd
}
