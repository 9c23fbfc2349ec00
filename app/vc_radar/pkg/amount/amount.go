// Package amount 从标题/摘要中抽取融资金额并换算为人民币
package amount

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

var multipliers = map[string]float64{
	"亿": 1e8,
	"千万": 1e7,
	"百万": 1e6,
	"万": 1e4,
}

var (
	usdMarkers = []string{"美元", "美金", "usd", "us$"}
	rmbMarkers = []string{"人民币", "rmb", "元"}
)

// Parser 金额解析器
type Parser struct {
	re       *regexp.Regexp
	usdToRMB float64
	numIdx   int
	unitIdx  int
	curIdx   int
}

// New 根据金额正则与美元汇率创建解析器，正则须包含 num 分组
func New(pattern string, usdToRMB float64) (*Parser, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile amount pattern: %w", err)
	}
	if re.SubexpIndex("num") < 0 {
		return nil, fmt.Errorf("amount pattern has no num group")
	}
	if usdToRMB <= 0 {
		return nil, fmt.Errorf("invalid usd_to_rmb rate %v", usdToRMB)
	}
	return &Parser{
		re:       re,
		usdToRMB: usdToRMB,
		numIdx:   re.SubexpIndex("num"),
		unitIdx:  re.SubexpIndex("unit"),
		curIdx:   re.SubexpIndex("cur"),
	}, nil
}

// ExtractText 返回第一个带量级或币种的金额片段，找不到时返回 model.AmountUndisclosed
func (p *Parser) ExtractText(text string) string {
	if m := p.find(text); m != nil {
		return strings.TrimSpace(text[m[0]:m[1]])
	}
	return model.AmountUndisclosed
}

// ToRMB 将金额片段换算为人民币；币种不明确时返回 false，不猜测默认币种
func (p *Parser) ToRMB(amountText string) (float64, bool) {
	amountText = strings.TrimSpace(amountText)
	if amountText == "" || amountText == model.AmountUndisclosed {
		return 0, false
	}
	m := p.find(amountText)
	if m == nil {
		return 0, false
	}

	num, err := strconv.ParseFloat(strings.ReplaceAll(group(amountText, m, p.numIdx), ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if mul, ok := multipliers[group(amountText, m, p.unitIdx)]; ok {
		num *= mul
	}

	lower := strings.ToLower(amountText)
	switch {
	case containsAny(lower, usdMarkers):
		return num * p.usdToRMB, true
	case containsAny(lower, rmbMarkers):
		return num, true
	default:
		return 0, false
	}
}

// find 跳过不带量级和币种的纯数字（年份、家数等）
func (p *Parser) find(text string) []int {
	for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
		if p.unitIdx < 0 && p.curIdx < 0 {
			return m
		}
		if group(text, m, p.unitIdx) != "" || group(text, m, p.curIdx) != "" {
			return m
		}
	}
	return nil
}

func group(text string, m []int, idx int) string {
	if idx < 0 || 2*idx+1 >= len(m) || m[2*idx] < 0 {
		return ""
	}
	return text[m[2*idx]:m[2*idx+1]]
}

func containsAny(text string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
