package classify

import "github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"

// Ruleset 一份规则表编译出的全部分类器
type Ruleset struct {
	Version string
	Event   *EventClassifier
	Sector  *SectorClassifier
	Round   *RoundClassifier
}

// New 编译规则表
func New(rules config.Rules) (*Ruleset, error) {
	event, err := NewEventClassifier(rules)
	if err != nil {
		return nil, err
	}
	round, err := NewRoundClassifier(rules.Rounds)
	if err != nil {
		return nil, err
	}
	return &Ruleset{
		Version: rules.Version,
		Event:   event,
		Sector:  NewSectorClassifier(rules.Sectors),
		Round:   round,
	}, nil
}
