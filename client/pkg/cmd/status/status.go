package status

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"zaazu/client/internal/api"
	"zaazu/client/internal/cmdutil"
)

func NewStatusCmd(svc api.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show server host stats",
		Example: "zaazu status",
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.StartLoading("Working...")
			defer cmdutil.StopLoading()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			st, err := svc.Status(ctx)
			if err != nil {
				cmdutil.PrintE(err.Error())
				return
			}

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"Metric", "Value"})
			tw.AppendRow(table.Row{"CPU", fmt.Sprintf("%.1f%%", st.CPUPercent)})
			tw.AppendRow(table.Row{"Memory", fmt.Sprintf("%d / %d MB", st.MemoryUsed>>20, st.MemoryTotal>>20)})
			tw.AppendRow(table.Row{"Disk", fmt.Sprintf("%d / %d GB", st.DiskUsed>>30, st.DiskTotal>>30)})
			tw.AppendRow(table.Row{"Uptime", (time.Duration(st.UptimeSeconds) * time.Second).String()})
			cmdutil.Print(tw.Render())
		},
	}
}
