package config

import "github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"

// 融资事件判定严格度
const (
	// StrictnessStrict 动作词 + 轮次词同时出现（B 策略）
	StrictnessStrict = "strict"
	// StrictnessAction 任一动作词即可
	StrictnessAction = "action"
	// StrictnessKeyword 标题包含“融资”即可
	StrictnessKeyword = "keyword"
)

// Rules 一份带版本号的规则表，所有判定逻辑只从这里读取关键词与阈值
type Rules struct {
	Version          string       `yaml:"version"`
	Strictness       string       `yaml:"strictness"`
	DropUnclassified *bool        `yaml:"drop_unclassified"`
	ActionWords      []string     `yaml:"action_words"`
	RoundWords       []string     `yaml:"round_words"`
	NoiseWords       []string     `yaml:"noise_words"`
	FundWords        []string     `yaml:"fund_words"`
	SignalWords      []string     `yaml:"signal_words"` // 领投/战略等加分词
	Sectors          []SectorRule `yaml:"sectors"`
	Rounds           []RoundRule  `yaml:"rounds"`
	AmountPattern    string       `yaml:"amount_pattern"`
	USDToRMB         float64      `yaml:"usd_to_rmb"`
}

// SectorRule 赛道规则，按列表顺序匹配
type SectorRule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// RoundRule 轮次规则，Pattern 为正则（忽略大小写）
type RoundRule struct {
	Pattern string `yaml:"pattern"`
	Stage   string `yaml:"stage"`
}

// ShouldDropUnclassified 未命中赛道的融资事件是否丢弃
func (r Rules) ShouldDropUnclassified() bool {
	return r.DropUnclassified == nil || *r.DropUnclassified
}

// DefaultAmountPattern 金额正则，分组名 qual/num/unit/cur 供解析使用
const DefaultAmountPattern = `(?i)(?P<qual>超|近|约)?\s*(?P<num>\d+(?:,\d{3})*(?:\.\d+)?)\s*(?P<unit>亿|千万|百万|万)?\s*(?P<cur>元人民币|人民币|RMB|元|美元|美金|USD|US\$)?`

// DefaultRules 内置规则表
func DefaultRules() Rules {
	drop := true
	return Rules{
		Version:          "b-strategy-1",
		Strictness:       StrictnessStrict,
		DropUnclassified: &drop,
		ActionWords:      []string{"完成", "获", "获得", "宣布完成", "宣布获得"},
		RoundWords:       []string{"融资", "种子轮", "天使轮", "A轮", "B轮", "C轮", "D轮", "Pre-A", "战略融资", "并购"},
		NoiseWords:       []string{"论坛", "峰会", "活动", "会议", "报告", "白皮书", "观点", "盘点", "预测", "榜单", "排行"},
		FundWords:        []string{"募资", "募集", "首关", "终关", "设立", "基金", "备案"},
		SignalWords:      []string{"领投", "战略", "国资", "产业"},
		Sectors: []SectorRule{
			{Tag: string(model.SectorAI), Keywords: []string{"AI", "人工智能", "大模型", "机器人"}},
			{Tag: string(model.SectorHealthcare), Keywords: []string{"医疗", "医药", "生物", "基因"}},
			{Tag: string(model.SectorHardTech), Keywords: []string{"芯片", "半导体", "材料", "制造"}},
			{Tag: string(model.SectorFrontier), Keywords: []string{"量子", "脑机", "核聚变"}},
			{Tag: string(model.SectorConsumer), Keywords: []string{"新消费", "品牌", "零售", "餐饮"}},
		},
		Rounds: []RoundRule{
			{Pattern: `种子轮|\bseed\b`, Stage: string(model.StageEarly)},
			{Pattern: `天使\+?轮|\bangel\b`, Stage: string(model.StageEarly)},
			{Pattern: `pre-?a\+?轮?`, Stage: string(model.StageEarly)},
			{Pattern: `a\+轮`, Stage: string(model.StageGrowth)},
			{Pattern: `a轮`, Stage: string(model.StageGrowth)},
			{Pattern: `pre-?b\+?轮?`, Stage: string(model.StageGrowth)},
			{Pattern: `b\+?轮`, Stage: string(model.StageGrowth)},
			{Pattern: `\bseries\s+[ab]\b`, Stage: string(model.StageGrowth)},
			{Pattern: `[c-f]\+?轮`, Stage: string(model.StageExpansion)},
			{Pattern: `\bseries\s+[c-f]\b`, Stage: string(model.StageExpansion)},
			{Pattern: `pre-?ipo`, Stage: string(model.StageLateOrExit)},
			{Pattern: `\bipo\b`, Stage: string(model.StageLateOrExit)},
			{Pattern: `战略融资|战略投资`, Stage: string(model.StageLateOrExit)},
			{Pattern: `并购|收购`, Stage: string(model.StageLateOrExit)},
		},
		AmountPattern: DefaultAmountPattern,
		USDToRMB:      7.2,
	}
}
