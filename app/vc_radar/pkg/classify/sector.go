package classify

import (
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

type sectorRule struct {
	tag      model.Sector
	keywords KeywordSet
}

// SectorClassifier 按规则表顺序匹配赛道，先命中者胜出
type SectorClassifier struct {
	rules []sectorRule
}

// NewSectorClassifier 从配置的有序规则表构造
func NewSectorClassifier(rules []config.SectorRule) *SectorClassifier {
	c := &SectorClassifier{rules: make([]sectorRule, 0, len(rules))}
	for _, r := range rules {
		c.rules = append(c.rules, sectorRule{
			tag:      model.Sector(r.Tag),
			keywords: NewKeywordSet(r.Keywords),
		})
	}
	return c
}

// Classify 未命中任何规则时返回 model.SectorUnclassified
func (c *SectorClassifier) Classify(text string) model.Sector {
	for _, r := range c.rules {
		if r.keywords.Any(text) {
			return r.tag
		}
	}
	return model.SectorUnclassified
}
