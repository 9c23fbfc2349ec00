package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

// Config 项目配置结构体
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Sources   []SourceConfig  `yaml:"sources"`
	Rules     Rules           `yaml:"rules"`
	Caps      Caps            `yaml:"caps"`
	Watchlist WatchlistConfig `yaml:"watchlist"`
	Notify    NotifyConfig    `yaml:"notify"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// FetchConfig 抓取节奏配置
type FetchConfig struct {
	QPS       float64 `yaml:"qps"`
	UserAgent string  `yaml:"user_agent"`
}

// 数据源类型
const (
	KindRSS     = "rss"
	KindHTML    = "html"
	KindArticle = "article"
	KindSearXNG = "searxng"
)

// SourceConfig 单个数据源
type SourceConfig struct {
	ID        string          `yaml:"id"`
	Kind      string          `yaml:"kind"`
	URL       string          `yaml:"url"`
	Region    string          `yaml:"region"`
	Timeout   int             `yaml:"timeout"` // 秒
	MaxItems  int             `yaml:"max_items"`
	Query     string          `yaml:"query"` // 仅 searxng
	Selectors SelectorsConfig `yaml:"selectors"`
}

// TimeoutDuration 超时时间，未配置时为 20 秒
func (s SourceConfig) TimeoutDuration() time.Duration {
	if s.Timeout <= 0 {
		return 20 * time.Second
	}
	return time.Duration(s.Timeout) * time.Second
}

// SelectorsConfig HTML 列表页的 CSS 选择器
type SelectorsConfig struct {
	Item    string `yaml:"item"`
	Title   string `yaml:"title"`
	Link    string `yaml:"link"`
	Summary string `yaml:"summary"`
}

// Caps 各栏目条数上限
type Caps struct {
	Deals    int `yaml:"deals"`
	Funds    int `yaml:"funds"`
	Overseas int `yaml:"overseas"`
}

// WatchlistConfig 重点关注配置
type WatchlistConfig struct {
	TopN int `yaml:"top_n"`
}

// NotifyConfig 推送配置
type NotifyConfig struct {
	Provider       string `yaml:"provider"` // serverchan 或 stdout
	SendKeyEnv     string `yaml:"sendkey_env"`
	BaseURL        string `yaml:"base_url"`
	Timeout        int    `yaml:"timeout"`
	ReportFailures bool   `yaml:"report_failures"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse 解析 YAML 并补齐默认值
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// rules 中未给出的字段在 applyDefaults 中按字段回落到默认值
	cfg.Rules = Rules{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default 返回内置默认配置（不含数据源）
func Default() *Config {
	cfg := &Config{
		Log:   LogConfig{Level: "info"},
		Fetch: FetchConfig{QPS: 2, UserAgent: "Mozilla/5.0"},
		Rules: DefaultRules(),
		Caps:  Caps{Deals: 15, Funds: 8, Overseas: 5},
		Watchlist: WatchlistConfig{
			TopN: 4,
		},
		Notify: NotifyConfig{
			Provider:       "serverchan",
			SendKeyEnv:     "SENDKEY",
			Timeout:        20,
			ReportFailures: true,
		},
	}
	return cfg
}

func (c *Config) applyDefaults() {
	defaults := DefaultRules()
	if c.Rules.Version == "" {
		c.Rules.Version = defaults.Version
	}
	if len(c.Rules.ActionWords) == 0 {
		c.Rules.ActionWords = defaults.ActionWords
	}
	if len(c.Rules.RoundWords) == 0 {
		c.Rules.RoundWords = defaults.RoundWords
	}
	if len(c.Rules.NoiseWords) == 0 {
		c.Rules.NoiseWords = defaults.NoiseWords
	}
	if len(c.Rules.FundWords) == 0 {
		c.Rules.FundWords = defaults.FundWords
	}
	if len(c.Rules.SignalWords) == 0 {
		c.Rules.SignalWords = defaults.SignalWords
	}
	if len(c.Rules.Sectors) == 0 {
		c.Rules.Sectors = defaults.Sectors
	}
	if len(c.Rules.Rounds) == 0 {
		c.Rules.Rounds = defaults.Rounds
	}
	if c.Rules.AmountPattern == "" {
		c.Rules.AmountPattern = defaults.AmountPattern
	}
	if c.Rules.USDToRMB == 0 {
		c.Rules.USDToRMB = defaults.USDToRMB
	}
	if c.Rules.Strictness == "" {
		c.Rules.Strictness = defaults.Strictness
	}
	if c.Rules.DropUnclassified == nil {
		c.Rules.DropUnclassified = defaults.DropUnclassified
	}

	for i := range c.Sources {
		if c.Sources[i].Kind == "" {
			c.Sources[i].Kind = KindRSS
		}
		if c.Sources[i].Region == "" {
			c.Sources[i].Region = "cn"
		}
		if c.Sources[i].MaxItems == 0 {
			c.Sources[i].MaxItems = 40
		}
		if c.Sources[i].ID == "" {
			c.Sources[i].ID = c.Sources[i].URL
		}
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	var errs []error
	for _, s := range c.Sources {
		switch s.Kind {
		case KindRSS, KindArticle:
		case KindHTML:
			if s.Selectors.Item == "" {
				errs = append(errs, fmt.Errorf("source %s: html source needs selectors.item", s.ID))
			}
		case KindSearXNG:
			if s.Query == "" {
				errs = append(errs, fmt.Errorf("source %s: searxng source needs query", s.ID))
			}
		default:
			errs = append(errs, fmt.Errorf("source %s: unknown kind %q", s.ID, s.Kind))
		}
		if s.URL == "" {
			errs = append(errs, fmt.Errorf("source %s: url is empty", s.ID))
		}
		if s.Region != "cn" && s.Region != "overseas" {
			errs = append(errs, fmt.Errorf("source %s: unknown region %q", s.ID, s.Region))
		}
	}
	if err := c.Rules.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate 校验规则表
func (r Rules) Validate() error {
	var errs []error
	switch r.Strictness {
	case StrictnessStrict, StrictnessAction, StrictnessKeyword:
	default:
		errs = append(errs, fmt.Errorf("unknown strictness %q", r.Strictness))
	}
	if r.USDToRMB <= 0 {
		errs = append(errs, fmt.Errorf("usd_to_rmb must be positive, got %v", r.USDToRMB))
	}
	if re, err := regexp.Compile(r.AmountPattern); err != nil {
		errs = append(errs, fmt.Errorf("amount_pattern: %w", err))
	} else if re.SubexpIndex("num") < 0 {
		errs = append(errs, errors.New("amount_pattern: missing (?P<num>...) group"))
	}
	for _, rr := range r.Rounds {
		if _, err := regexp.Compile(rr.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("round pattern %q: %w", rr.Pattern, err))
		}
		switch rr.Stage {
		case string(model.StageEarly), string(model.StageGrowth), string(model.StageExpansion), string(model.StageLateOrExit):
		default:
			errs = append(errs, fmt.Errorf("round pattern %q: unknown stage %q", rr.Pattern, rr.Stage))
		}
	}
	return errors.Join(errs...)
}
