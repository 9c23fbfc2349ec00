package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/notify"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/notify/serverchan"
)

var cfgFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vc_radar",
		Short:         "VC/PE 融资晨报",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "配置文件路径")

	root.AddCommand(newRunCommand())
	root.AddCommand(newClassifyCommand())
	root.AddCommand(newSourcesCommand())
	return root
}

// setup 加载配置并初始化全局日志
func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("无法加载配置文件: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("无法初始化日志: %w", err)
	}
	return cfg, nil
}

// newSink 按配置创建推送通道，SendKey 只在这里从环境变量读取一次
func newSink(cfg config.NotifyConfig, w io.Writer) (notify.Sink, error) {
	switch cfg.Provider {
	case "stdout":
		return notify.NewWriterSink(w), nil
	case "serverchan", "":
		key := os.Getenv(cfg.SendKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("环境变量 %s 未设置", cfg.SendKeyEnv)
		}
		return serverchan.NewClient(key, cfg.BaseURL, cfg.Timeout, logger.Log.WithField("sink", "serverchan"))
	default:
		return nil, fmt.Errorf("unknown notify provider: %s", cfg.Provider)
	}
}
