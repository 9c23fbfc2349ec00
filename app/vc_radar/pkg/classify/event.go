package classify

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

// financingKeyword keyword 严格度下的判定词
const financingKeyword = "融资"

// EventClassifier 仅依据标题判断融资事件 / 基金动态 / 噪声
type EventClassifier struct {
	strictness string
	action     KeywordSet
	round      KeywordSet
	noise      KeywordSet
	fund       KeywordSet
}

// NewEventClassifier 从规则表构造
func NewEventClassifier(rules config.Rules) (*EventClassifier, error) {
	switch rules.Strictness {
	case config.StrictnessStrict, config.StrictnessAction, config.StrictnessKeyword:
	default:
		return nil, fmt.Errorf("unknown strictness %q", rules.Strictness)
	}
	return &EventClassifier{
		strictness: rules.Strictness,
		action:     NewKeywordSet(rules.ActionWords),
		round:      NewKeywordSet(rules.RoundWords),
		noise:      NewKeywordSet(rules.NoiseWords),
		fund:       NewKeywordSet(rules.FundWords),
	}, nil
}

// IsNoise 命中噪声词即一票否决
func (c *EventClassifier) IsNoise(title string) bool {
	return c.noise.Any(title)
}

// IsDeal 判断是否为真实融资事件
func (c *EventClassifier) IsDeal(title string) bool {
	if c.IsNoise(title) {
		return false
	}
	switch c.strictness {
	case config.StrictnessAction:
		return c.action.Any(title)
	case config.StrictnessKeyword:
		return strings.Contains(title, financingKeyword)
	default:
		return c.action.Any(title) && c.round.Any(title)
	}
}

// IsFund 判断是否为基金募资/设立动态
func (c *EventClassifier) IsFund(title string) bool {
	if c.IsNoise(title) {
		return false
	}
	return c.fund.Any(title)
}

// Classify 先判融资事件，再判基金动态，其余为噪声
func (c *EventClassifier) Classify(title string) model.EventKind {
	switch {
	case c.IsDeal(title):
		return model.EventDeal
	case c.IsFund(title):
		return model.EventFund
	default:
		return model.EventNoise
	}
}
