package backup

import (
	"github.com/spf13/cobra"

	"zaazu/client/internal/api"
	"zaazu/client/pkg/cmd/backup/cleanup"
	"zaazu/client/pkg/cmd/backup/create"
	"zaazu/client/pkg/cmd/backup/download"
	"zaazu/client/pkg/cmd/backup/list"
)

func NewBackupCmd(svc api.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage Drive backup archives",
	}

	cmd.AddCommand(list.NewListBackupsCmd(svc))
	cmd.AddCommand(create.NewCreateBackupCmd(svc))
	cmd.AddCommand(cleanup.NewCleanupBackupsCmd(svc))
	cmd.AddCommand(download.NewDownloadBackupCmd(svc))
	return cmd
}
