package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:   "buildflow",
		Short: "Terminal client for the BuildFlow project-management API",
		Long: `buildflow is a terminal client for the BuildFlow
construction-project-management API: role-gated dashboards, CRUD for
projects, tasks, resources and budgets, spreadsheet import, and team
performance reporting.

Run "buildflow login" first; the session persists between invocations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bootstrap(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		demoUsersCmd(a),
		navCmd(a),
		openCmd(a),
		projectsCmd(a),
		tasksCmd(a),
		resourcesCmd(a),
		budgetsCmd(a),
		dashboardCmd(a),
		teamCmd(a),
		profileCmd(a),
		importCmd(a),
		activityCmd(a),
		stubCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
