package download

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"zaazu/client/internal/api"
	"zaazu/client/internal/cmdutil"
)

func NewDownloadBackupCmd(svc api.Service) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "download <fileId>",
		Short:   "Download a backup archive",
		Example: "zaazu backup download 1AbC... --output backup.json",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.StartLoading("Downloading...")
			defer cmdutil.StopLoading()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			payload, err := svc.DownloadBackup(ctx, args[0])
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			raw, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			if output == "" {
				cmdutil.Print(string(raw))
				return
			}
			if err := os.WriteFile(output, raw, 0644); err != nil {
				cmdutil.PrintE(err.Error())
				return
			}
			cmdutil.PrintS("Saved to " + output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the archive to a file instead of stdout")
	return cmd
}
