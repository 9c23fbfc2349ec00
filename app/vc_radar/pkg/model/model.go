package model

import "fmt"

// Region 数据源所属区域
type Region string

const (
	RegionCN       Region = "cn"
	RegionOverseas Region = "overseas"
)

// Sector 赛道标签
type Sector string

const (
	SectorAI           Sector = "AI"
	SectorHealthcare   Sector = "医疗/生物"
	SectorHardTech     Sector = "硬科技"
	SectorFrontier     Sector = "前沿科技"
	SectorConsumer     Sector = "消费"
	SectorUnclassified Sector = "未分类"
)

// Stage 融资阶段
type Stage string

const (
	StageEarly      Stage = "早期"
	StageGrowth     Stage = "成长期"
	StageExpansion  Stage = "扩张期"
	StageLateOrExit Stage = "后期/退出"
	StageUnlabeled  Stage = "未标注"
)

// RoundUnlabeled 未识别出轮次时的标签
const RoundUnlabeled = "未标注"

// AmountUndisclosed 未找到金额时的占位文本
const AmountUndisclosed = "未披露"

// EventKind 标题判定结果
type EventKind string

const (
	EventDeal  EventKind = "deal"
	EventFund  EventKind = "fund"
	EventNoise EventKind = "noise"
)

// RawItem 数据源产出的原始条目，单次运行内只读
type RawItem struct {
	Title       string
	Link        string
	Summary     string
	PublishedAt string // RFC3339，可能为空
	SourceID    string
	Region      Region
}

// GetTitle 去重键
func (r RawItem) GetTitle() string {
	return r.Title
}

// Blob 标题与摘要拼接，用于赛道与金额抽取
func (r RawItem) Blob() string {
	if r.Summary == "" {
		return r.Title
	}
	return r.Title + " " + r.Summary
}

// ClassifiedDeal 已确认的融资事件
type ClassifiedDeal struct {
	RawItem
	Sector     Sector
	Round      string
	Stage      Stage
	AmountHint string
	AmountRMB  *float64 // 仅在币种明确时有值
}

// Disclosed 金额是否可换算为人民币
func (d ClassifiedDeal) Disclosed() bool {
	return d.AmountRMB != nil
}

// FundAnnouncement 基金募资/设立类动态
type FundAnnouncement struct {
	RawItem
	AmountHint string
}

// DigestStats 对去重后融资事件的汇总
type DigestStats struct {
	Total            int
	DisclosedCount   int
	UndisclosedCount int
	DisclosedSumRMB  float64
	BySector         map[Sector]int
	ByStage          map[Stage]int
}

// WatchlistEntry 指向融资事件的引用及其得分
type WatchlistEntry struct {
	Deal  *ClassifiedDeal
	Score int
}

// Watchlist 重点关注
type Watchlist struct {
	Deals      []WatchlistEntry
	Fund       *FundAnnouncement
	Commentary []string
}

// FetchStatus 单个数据源的抓取状态
type FetchStatus struct {
	SourceID string
	OK       bool
	Count    int
	Reason   string
}

// String 渲染为 OK(n) 或 FAIL(reason)
func (s FetchStatus) String() string {
	if s.OK {
		return fmt.Sprintf("OK(%d)", s.Count)
	}
	return fmt.Sprintf("FAIL(%s)", s.Reason)
}

// Digest 一次运行的完整产出
type Digest struct {
	RunID     string
	Date      string
	Deals     []ClassifiedDeal
	Funds     []FundAnnouncement
	Overseas  []RawItem
	Stats     DigestStats
	Watchlist Watchlist
	Statuses  []FetchStatus
}

// FailedSources 返回抓取失败的数据源状态
func (d *Digest) FailedSources() []FetchStatus {
	var failed []FetchStatus
	for _, s := range d.Statuses {
		if !s.OK {
			failed = append(failed, s)
		}
	}
	return failed
}
