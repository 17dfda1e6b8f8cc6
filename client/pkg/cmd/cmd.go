package cmd

import (
	"github.com/spf13/cobra"

	"zaazu/client/internal/api"
	"zaazu/client/internal/config"
	"zaazu/client/pkg/cmd/backup"
	"zaazu/client/pkg/cmd/status"
)

func New() (*cobra.Command, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}

	apiClient := api.NewClient(cfg)
	svc := api.NewService(apiClient, cfg)

	cmd := &cobra.Command{
		Use:   "zaazu",
		Short: "zaazu - admin CLI for the Zaazu content platform",
	}

	cmd.AddCommand(backup.NewBackupCmd(svc))
	cmd.AddCommand(status.NewStatusCmd(svc))
	return cmd, nil
}
