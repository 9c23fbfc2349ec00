package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/aggregate"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/amount"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/classify"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/dedup"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/textnorm"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/watchlist"
)

// summaryRunes 摘要保留的最大字符数
const summaryRunes = 200

// Beijing 晨报日期所用时区（UTC+8，不依赖系统时区库）
var Beijing = time.FixedZone("CST", 8*3600)

// Engine 核心处理引擎：顺序抓取、清洗、判定、去重、汇总、排序
type Engine struct {
	cfg     *config.Config
	sources []source.Source
	rules   *classify.Ruleset
	amounts *amount.Parser
	ranker  *watchlist.Ranker
	limiter *rate.Limiter
	log     logrus.FieldLogger
}

// NewEngine 创建引擎实例，sources 的顺序即处理顺序
func NewEngine(cfg *config.Config, sources []source.Source, log logrus.FieldLogger) (*Engine, error) {
	if log == nil {
		log = logger.Log
	}
	rules, err := classify.New(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("规则表编译失败: %w", err)
	}
	amounts, err := amount.New(cfg.Rules.AmountPattern, cfg.Rules.USDToRMB)
	if err != nil {
		return nil, fmt.Errorf("金额解析器初始化失败: %w", err)
	}

	// 抓取节奏控制：每个数据源之间按 QPS 间隔，不做重试
	limit := rate.Inf
	if cfg.Fetch.QPS > 0 {
		limit = rate.Limit(cfg.Fetch.QPS)
	}

	return &Engine{
		cfg:     cfg,
		sources: sources,
		rules:   rules,
		amounts: amounts,
		ranker:  watchlist.NewRanker(cfg.Watchlist.TopN, cfg.Rules.SignalWords),
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}, nil
}

// RunOptions 运行选项
type RunOptions struct {
	Now              time.Time
	ProgressCallback func(status string, progress int)
}

// Run 执行一次晨报生成任务
func (e *Engine) Run(ctx context.Context, opts RunOptions) (*model.Digest, error) {
	runID := uuid.NewString()
	log := e.log.WithField("run_id", runID)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	progress := func(status string, p int) {
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(status, p)
		}
	}

	if len(e.sources) == 0 {
		return nil, &RunError{RunID: runID, Err: ErrNoSources}
	}
	log.Infof("开始生成晨报，规则版本 %s，共 %d 个数据源", e.rules.Version, len(e.sources))
	progress("starting", 0)

	digest := &model.Digest{
		RunID: runID,
		Date:  now.In(Beijing).Format(time.DateOnly),
	}

	var (
		deals    []model.ClassifiedDeal
		funds    []model.FundAnnouncement
		overseas []model.RawItem
		okCount  int
	)

	for i, src := range e.sources {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, &RunError{RunID: runID, Statuses: digest.Statuses, Err: err}
		}

		items, status := src.Fetch(ctx)
		status.SourceID = src.ID()
		digest.Statuses = append(digest.Statuses, status)
		if !status.OK {
			log.Warnf("数据源 [%s] %s", src.ID(), status)
			continue
		}
		okCount++
		log.Infof("数据源 [%s] %s", src.ID(), status)

		for _, raw := range items {
			item := normalizeItem(raw, src)
			if item.Title == "" {
				continue
			}
			if item.Region == model.RegionOverseas {
				overseas = append(overseas, item)
				continue
			}

			kind, deal, fund := e.Annotate(item)
			switch kind {
			case model.EventDeal:
				if deal == nil {
					log.Debugf("未命中赛道，丢弃: %s", item.Title)
					continue
				}
				deals = append(deals, *deal)
			case model.EventFund:
				funds = append(funds, *fund)
			}
		}
		progress(fmt.Sprintf("fetched source: %s", src.ID()), 10+int(float64(i+1)/float64(len(e.sources))*70))
	}

	if okCount == 0 {
		return nil, &RunError{RunID: runID, Statuses: digest.Statuses, Err: ErrAllSourcesFailed}
	}

	digest.Deals = dedup.ByTitle(deals, e.cfg.Caps.Deals)
	digest.Funds = dedup.ByTitle(funds, e.cfg.Caps.Funds)
	digest.Overseas = dedup.ByTitle(overseas, e.cfg.Caps.Overseas)

	progress("ranking", 85)
	digest.Stats = aggregate.Stats(digest.Deals)
	digest.Watchlist = e.ranker.Rank(digest.Deals, digest.Funds, digest.Stats)

	log.Infof("晨报生成完成: 融资 %d 条（候选 %d），基金 %d 条，海外 %d 条，重点关注 %d 条",
		len(digest.Deals), len(deals), len(digest.Funds), len(digest.Overseas), len(digest.Watchlist.Deals))
	progress("completed", 100)
	return digest, nil
}

// Annotate 对单条已清洗的条目做判定与元数据抽取。
// 融资事件未命中赛道且配置要求丢弃时，返回 EventDeal 与 nil
func (e *Engine) Annotate(item model.RawItem) (model.EventKind, *model.ClassifiedDeal, *model.FundAnnouncement) {
	kind := e.rules.Event.Classify(item.Title)
	blob := item.Blob()

	switch kind {
	case model.EventDeal:
		sector := e.rules.Sector.Classify(blob)
		if sector == model.SectorUnclassified && e.cfg.Rules.ShouldDropUnclassified() {
			return kind, nil, nil
		}
		round, stage := e.rules.Round.Classify(item.Title)
		if stage == model.StageUnlabeled && item.Summary != "" {
			round, stage = e.rules.Round.Classify(item.Summary)
		}
		deal := &model.ClassifiedDeal{
			RawItem:    item,
			Sector:     sector,
			Round:      round,
			Stage:      stage,
			AmountHint: e.amounts.ExtractText(blob),
		}
		if v, ok := e.amounts.ToRMB(deal.AmountHint); ok {
			deal.AmountRMB = &v
		}
		return kind, deal, nil

	case model.EventFund:
		return kind, nil, &model.FundAnnouncement{
			RawItem:    item,
			AmountHint: e.amounts.ExtractText(blob),
		}
	}
	return kind, nil, nil
}

func normalizeItem(raw model.RawItem, src source.Source) model.RawItem {
	item := raw
	item.Title = textnorm.Normalize(raw.Title)
	item.Summary = textnorm.Truncate(textnorm.Normalize(raw.Summary), summaryRunes)
	item.Link = textnorm.Normalize(raw.Link)
	if item.SourceID == "" {
		item.SourceID = src.ID()
	}
	if item.Region == "" {
		item.Region = src.Region()
	}
	return item
}
