package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/factory"
)

// newSourcesCommand 逐个抓取数据源并打印状态
func newSourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "检查所有数据源的抓取状态",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			sources, err := factory.NewSources(cfg, logger.Log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tREGION\tSTATUS")
			for _, src := range sources {
				_, status := src.Fetch(ctx)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", src.ID(), src.Region(), status)
			}
			return tw.Flush()
		},
	}
}
