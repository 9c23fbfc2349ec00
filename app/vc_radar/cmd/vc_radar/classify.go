package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/engine"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/textnorm"
)

// newClassifyCommand 对单条标题调试规则表
func newClassifyCommand() *cobra.Command {
	var summary string
	cmd := &cobra.Command{
		Use:   "classify <title>",
		Short: "用当前规则表判定一条标题",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			eng, err := engine.NewEngine(cfg, nil, logger.Log)
			if err != nil {
				return err
			}

			item := model.RawItem{
				Title:   textnorm.Normalize(args[0]),
				Summary: textnorm.Normalize(summary),
				Region:  model.RegionCN,
			}
			kind, deal, fund := eng.Annotate(item)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "规则版本: %s\n", cfg.Rules.Version)
			fmt.Fprintf(out, "判定: %s\n", kind)
			switch {
			case deal != nil:
				fmt.Fprintf(out, "赛道: %s\n轮次: %s\n阶段: %s\n金额: %s\n", deal.Sector, deal.Round, deal.Stage, deal.AmountHint)
				if deal.Disclosed() {
					fmt.Fprintf(out, "折合人民币: %.0f\n", *deal.AmountRMB)
				}
			case fund != nil:
				fmt.Fprintf(out, "规模线索: %s\n", fund.AmountHint)
			case kind == model.EventDeal:
				fmt.Fprintln(out, "未命中赛道，已丢弃")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&summary, "summary", "", "摘要文本")
	return cmd
}
