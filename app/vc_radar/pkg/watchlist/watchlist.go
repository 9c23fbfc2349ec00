// Package watchlist 对融资事件打分并挑选重点关注
package watchlist

import (
	"fmt"
	"sort"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/aggregate"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/classify"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

// 打分权重
const (
	scoreSector = 3 // 硬科技 / 前沿科技
	scoreStage  = 2 // 扩张期 / 后期
	scoreSignal = 2 // 领投、战略、国资、产业
	scoreAmount = 1 // 金额已披露
)

// Ranker 启发式打分器
type Ranker struct {
	topN    int
	signals classify.KeywordSet
}

// NewRanker topN <= 0 时默认取 4 条
func NewRanker(topN int, signalWords []string) *Ranker {
	if topN <= 0 {
		topN = 4
	}
	return &Ranker{topN: topN, signals: classify.NewKeywordSet(signalWords)}
}

// Score 单条融资事件得分
func (r *Ranker) Score(d *model.ClassifiedDeal) int {
	score := 0
	if d.Sector == model.SectorHardTech || d.Sector == model.SectorFrontier {
		score += scoreSector
	}
	if d.Stage == model.StageExpansion || d.Stage == model.StageLateOrExit {
		score += scoreStage
	}
	if r.signals.Any(d.Title) {
		score += scoreSignal
	}
	if d.Disclosed() {
		score += scoreAmount
	}
	return score
}

// Rank 返回得分最高的 topN 条（同分保持原顺序）、第一条基金动态及点评
func (r *Ranker) Rank(deals []model.ClassifiedDeal, funds []model.FundAnnouncement, stats model.DigestStats) model.Watchlist {
	entries := make([]model.WatchlistEntry, 0, len(deals))
	for i := range deals {
		entries = append(entries, model.WatchlistEntry{Deal: &deals[i], Score: r.Score(&deals[i])})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > r.topN {
		entries = entries[:r.topN]
	}

	wl := model.Watchlist{Deals: entries}
	if len(funds) > 0 {
		wl.Fund = &funds[0]
	}
	wl.Commentary = commentary(wl, deals, stats)
	return wl
}

func commentary(wl model.Watchlist, deals []model.ClassifiedDeal, stats model.DigestStats) []string {
	if stats.Total == 0 {
		lines := []string{"今日未识别到明确的融资事件。"}
		if wl.Fund != nil {
			lines = append(lines, fmt.Sprintf("基金侧关注：%s", wl.Fund.Title))
		}
		return lines
	}

	lines := []string{fmt.Sprintf("今日共识别融资事件 %d 起，其中 %d 起披露金额，合计约 %.2f 亿元人民币；%d 起金额未披露或币种不明。",
		stats.Total, stats.DisclosedCount, stats.DisclosedSumRMB/1e8, stats.UndisclosedCount)}

	if ranked := aggregate.Ranked(stats.BySector); len(ranked) > 0 {
		top := ranked[0]
		lines = append(lines, fmt.Sprintf("最活跃赛道：%s（%d 起）。", top.Key, top.Count))
	}

	hard := stats.BySector[model.SectorHardTech] + stats.BySector[model.SectorFrontier]
	if hard > 0 {
		lines = append(lines, fmt.Sprintf("硬科技/前沿科技合计 %d 起，占比 %.0f%%。", hard, float64(hard)*100/float64(len(deals))))
	}

	late := stats.ByStage[model.StageExpansion] + stats.ByStage[model.StageLateOrExit]
	if late > 0 {
		lines = append(lines, fmt.Sprintf("扩张期及后期/退出类交易 %d 起。", late))
	}

	if len(wl.Deals) > 0 {
		lines = append(lines, fmt.Sprintf("重点关注：%s（得分 %d）。", wl.Deals[0].Deal.Title, wl.Deals[0].Score))
	}
	if wl.Fund != nil {
		lines = append(lines, fmt.Sprintf("基金侧关注：%s", wl.Fund.Title))
	}
	return lines
}
