package classify

import (
	"fmt"
	"regexp"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

type roundRule struct {
	re    *regexp.Regexp
	stage model.Stage
}

// RoundClassifier 按顺序匹配轮次正则，返回命中的原文片段与阶段
type RoundClassifier struct {
	rules []roundRule
}

// NewRoundClassifier 编译轮次规则，正则统一忽略大小写
func NewRoundClassifier(rules []config.RoundRule) (*RoundClassifier, error) {
	c := &RoundClassifier{rules: make([]roundRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile(`(?i)` + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile round pattern %q: %w", r.Pattern, err)
		}
		c.rules = append(c.rules, roundRule{re: re, stage: model.Stage(r.Stage)})
	}
	return c, nil
}

// Classify 第一条命中的规则胜出（按规则顺序，而非文本位置）
func (c *RoundClassifier) Classify(text string) (string, model.Stage) {
	for _, r := range c.rules {
		if label := r.re.FindString(text); label != "" {
			return label, r.stage
		}
	}
	return model.RoundUnlabeled, model.StageUnlabeled
}
