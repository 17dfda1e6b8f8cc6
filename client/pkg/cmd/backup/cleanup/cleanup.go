package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"zaazu/client/internal/api"
	"zaazu/client/internal/cmdutil"
)

func NewCleanupBackupsCmd(svc api.Service) *cobra.Command {
	var keepCount int
	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   "Delete old backups, keeping only the most recent ones",
		Example: "zaazu backup cleanup --keep 10",
		Run: func(cmd *cobra.Command, args []string) {
			p := promptui.Prompt{
				Label:     fmt.Sprintf("Delete every backup except the %d most recent", keepCount),
				IsConfirm: true,
			}
			if _, err := p.Run(); err != nil {
				cmdutil.Print("Aborted")
				return
			}

			cmdutil.StartLoading("Cleaning up...")
			defer cmdutil.StopLoading()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			result, err := svc.CleanupBackups(ctx, keepCount)
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			cmdutil.PrintS(fmt.Sprintf("Deleted %d backup(s)", result.Deleted))
			for _, failure := range result.Failures {
				cmdutil.PrintE(fmt.Sprintf("failed: %s (%s)", failure.Name, failure.Reason))
			}
		},
	}
	cmd.Flags().IntVarP(&keepCount, "keep", "k", 10, "Number of recent backups to keep")
	return cmd
}
