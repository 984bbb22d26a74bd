package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/stub"
)

func stubCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stub",
		Short: "Run the in-memory development API server",
		Long: `Run a self-contained BuildFlow API with demo accounts and seeded
sample data, for local development without the real backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := stub.New(stub.Options{
				JWTSecret: a.cfg.Stub.JWTSecret,
				TokenTTL:  time.Duration(a.cfg.Stub.TokenTTL) * time.Minute,
				Logger:    a.log,
			})
			return srv.Start(":" + a.cfg.Stub.Port)
		},
	}
}
