package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

func TestRoundClassifier_Classify(t *testing.T) {
	c, err := NewRoundClassifier(config.DefaultRules().Rounds)
	require.NoError(t, err)

	tests := []struct {
		text      string
		wantLabel string
		wantStage model.Stage
	}{
		{"XX公司完成1亿元A轮融资", "A轮", model.StageGrowth},
		{"完成数千万元种子轮融资", "种子轮", model.StageEarly},
		{"获天使轮投资", "天使轮", model.StageEarly},
		{"完成Pre-A轮融资", "Pre-A轮", model.StageEarly},
		{"完成Pre-A+轮融资", "Pre-A+轮", model.StageEarly},
		{"完成A+轮融资", "A+轮", model.StageGrowth},
		{"完成B轮融资", "B轮", model.StageGrowth},
		{"完成C轮融资", "C轮", model.StageExpansion},
		{"完成D+轮融资", "D+轮", model.StageExpansion},
		{"完成E轮融资", "E轮", model.StageExpansion},
		{"Startup raises $20M Series B", "Series B", model.StageGrowth},
		{"Acme closes Series D", "Series D", model.StageExpansion},
		{"完成Pre-IPO轮融资", "Pre-IPO", model.StageLateOrExit},
		{"获战略融资", "战略融资", model.StageLateOrExit},
		{"宣布完成对某公司的收购", "收购", model.StageLateOrExit},
		{"完成新一轮融资", model.RoundUnlabeled, model.StageUnlabeled},
		{"", model.RoundUnlabeled, model.StageUnlabeled},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			label, stage := c.Classify(tt.text)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantStage, stage)
		})
	}
}

func TestRoundClassifier_RuleOrderNotTextPosition(t *testing.T) {
	c, err := NewRoundClassifier(config.DefaultRules().Rounds)
	require.NoError(t, err)

	// B 轮出现在前，但 A 轮规则排在前面
	label, stage := c.Classify("完成B轮融资，此前已完成A轮")
	assert.Equal(t, "A轮", label)
	assert.Equal(t, model.StageGrowth, stage)
}

func TestNewRoundClassifier_BadPattern(t *testing.T) {
	_, err := NewRoundClassifier([]config.RoundRule{{Pattern: "(", Stage: string(model.StageEarly)}})
	assert.Error(t, err)
}
