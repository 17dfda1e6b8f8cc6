package create

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"zaazu/client/internal/api"
	"zaazu/client/internal/cmdutil"
)

func NewCreateBackupCmd(svc api.Service) *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Export the full dataset and upload it as a new backup",
		Example: "zaazu backup create --user ana@zaazu.app",
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.StartLoading("Exporting...")
			defer cmdutil.StopLoading()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			resp, err := svc.ExportBackup(ctx, user)
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			cmdutil.PrintS(resp.Message)
			cmdutil.Print("File: " + resp.FileName + " (" + resp.Size + ")")
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "Admin identity recorded in the snapshot")
	return cmd
}
