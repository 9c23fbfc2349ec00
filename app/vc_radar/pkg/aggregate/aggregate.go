// Package aggregate 汇总当日融资事件
package aggregate

import (
	"sort"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

// Stats 对去重后的融资事件做一次折叠。未解析出人民币金额的条目只计入未披露数，不以 0 计入总额
func Stats(deals []model.ClassifiedDeal) model.DigestStats {
	stats := model.DigestStats{
		Total:    len(deals),
		BySector: make(map[model.Sector]int),
		ByStage:  make(map[model.Stage]int),
	}
	for _, d := range deals {
		stats.BySector[d.Sector]++
		stats.ByStage[d.Stage]++
		if d.AmountRMB != nil {
			stats.DisclosedCount++
			stats.DisclosedSumRMB += *d.AmountRMB
		} else {
			stats.UndisclosedCount++
		}
	}
	return stats
}

// Count 一个标签及其计数
type Count[K ~string] struct {
	Key   K
	Count int
}

// Ranked 按计数降序排列，计数相同按键名升序，保证输出稳定
func Ranked[K ~string](m map[K]int) []Count[K] {
	out := make([]Count[K], 0, len(m))
	for k, v := range m {
		out = append(out, Count[K]{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
