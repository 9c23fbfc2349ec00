package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/engine"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/notify"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/report"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/factory"
)

func newRunCommand() *cobra.Command {
	var (
		dryRun  bool
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "抓取数据源，生成并推送当日晨报",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. 加载配置
			cfg, err := setup()
			if err != nil {
				return err
			}
			logger.Log.Info("启动 VC/PE 晨报...")

			// 2. 推送通道：dry-run 时写到 stdout 或 --out 指定的文件
			var sink notify.Sink
			if dryRun {
				var w io.Writer = cmd.OutOrStdout()
				if outFile != "" {
					f, err := os.Create(outFile)
					if err != nil {
						return fmt.Errorf("create output file: %w", err)
					}
					defer f.Close()
					w = f
				}
				sink = notify.NewWriterSink(w)
			} else {
				if sink, err = newSink(cfg.Notify, cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			// 3. 初始化数据源与引擎
			sources, err := factory.NewSources(cfg, logger.Log)
			if err != nil {
				return err
			}
			eng, err := engine.NewEngine(cfg, sources, logger.Log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// 4. 运行
			digest, err := eng.Run(ctx, engine.RunOptions{
				ProgressCallback: func(status string, progress int) {
					logger.Log.Debugf("[%3d%%] %s", progress, status)
				},
			})
			if err != nil {
				logger.Log.Errorf("晨报生成失败: %v", err)
				if cfg.Notify.ReportFailures {
					reportFailure(ctx, sink, err)
				}
				return err
			}

			// 5. 渲染并推送
			body, err := report.Markdown(digest, report.StrategyLabel(cfg.Rules.Strictness))
			if err != nil {
				return err
			}
			if err := sink.Send(ctx, report.Title(digest.Date), body); err != nil {
				logger.Log.Errorf("推送失败: %v", err)
				return err
			}
			if failed := digest.FailedSources(); len(failed) > 0 {
				logger.Log.Warnf("%d 个数据源抓取失败，晨报已照常生成", len(failed))
			}
			logger.Log.Infof("晨报已生成: %d 条融资，%d 条基金动态", len(digest.Deals), len(digest.Funds))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "只输出 Markdown，不推送")
	cmd.Flags().StringVar(&outFile, "out", "", "dry-run 时写入的文件")
	return cmd
}

// reportFailure 通过同一推送通道发送失败报告，推送本身失败只记日志
func reportFailure(ctx context.Context, sink notify.Sink, runErr error) {
	var statuses []model.FetchStatus
	var re *engine.RunError
	if errors.As(runErr, &re) {
		statuses = re.Statuses
	}
	// 运行被取消时 ctx 已失效，改用独立的短超时
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 20*time.Second)
	defer cancel()

	date := time.Now().In(engine.Beijing).Format(time.DateOnly)
	if err := sink.Send(sendCtx, report.FailureTitle(date), report.FailureMarkdown(runErr, statuses)); err != nil {
		logger.Log.Errorf("失败报告推送失败: %v", err)
	}
}
