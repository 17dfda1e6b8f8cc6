package list

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"zaazu/client/internal/api"
	"zaazu/client/internal/cmdutil"
)

func NewListBackupsCmd(svc api.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List backup archives, newest first",
		Example: "zaazu backup list",
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.StartLoading("Fetching backups...")
			defer cmdutil.StopLoading()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			files, err := svc.ListBackups(ctx)
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"ID", "Name", "Size (bytes)", "Created"})
			for _, f := range files {
				tw.AppendRow(table.Row{
					f.ID,
					f.Name,
					f.Size,
					f.CreatedTime.Format(time.RFC3339),
				})
				tw.AppendSeparator()
			}
			cmdutil.Print(tw.Render())
			cmdutil.Print(fmt.Sprintf("%d backup(s)", len(files)))
		},
	}
}
