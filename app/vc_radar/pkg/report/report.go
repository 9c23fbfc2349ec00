// Package report 把晨报渲染为 Markdown，不做任何判定
package report

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/aggregate"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

const (
	emptyDeals    = "今日未抓到明确完成融资标题"
	emptyFunds    = "今日未抓到明确募资标题"
	emptyOverseas = "今日海外源无更新"
)

const digestTpl = `# {{.Date}} VC/PE 融资晨报（{{.Strategy}}）

## 🇨🇳 中国真融资

{{range $i, $d := .Deals -}}
{{inc $i}}. **[{{$d.Title}}]({{$d.Link}})**
   - 赛道：{{$d.Sector}}｜轮次：{{$d.Round}}｜金额：{{$d.AmountHint}}
{{else -}}
- ` + emptyDeals + `
{{end}}
## 🏦 基金动态

{{range $i, $f := .Funds -}}
{{inc $i}}. **[{{$f.Title}}]({{$f.Link}})**
   - 规模线索：{{$f.AmountHint}}
{{else -}}
- ` + emptyFunds + `
{{end}}
## 🌍 海外对比

{{range .Overseas -}}
- **[{{.Title}}]({{.Link}})**
{{else -}}
- ` + emptyOverseas + `
{{end}}
## 👀 重点关注

{{range .Watchlist.Commentary -}}
- {{.}}
{{end}}
{{- with .Watchlist.Deals}}
{{range $i, $e := . -}}
{{inc $i}}. **[{{$e.Deal.Title}}]({{$e.Deal.Link}})**（{{$e.Deal.Sector}}｜{{$e.Deal.Stage}}｜得分 {{$e.Score}}）
{{end}}
{{- end}}
## 📊 数据概览

- 融资事件：{{.Stats.Total}} 起（披露金额 {{.Stats.DisclosedCount}} 起，合计 {{yi .Stats.DisclosedSumRMB}} 亿元；未披露 {{.Stats.UndisclosedCount}} 起）
{{- with .Sectors}}
- 赛道分布：{{range $i, $c := .}}{{if $i}}｜{{end}}{{$c.Key}} {{$c.Count}}{{end}}
{{- end}}
{{- with .Stages}}
- 阶段分布：{{range $i, $c := .}}{{if $i}}｜{{end}}{{$c.Key}} {{$c.Count}}{{end}}
{{- end}}

## 🛰 数据源状态

{{range .Statuses -}}
- {{.SourceID}}：{{.}}
{{end -}}
`

var digestTemplate = template.Must(template.New("digest").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"yi":  func(v float64) string { return fmt.Sprintf("%.2f", v/1e8) },
}).Parse(digestTpl))

type digestView struct {
	*model.Digest
	Strategy string
	Sectors  []aggregate.Count[model.Sector]
	Stages   []aggregate.Count[model.Stage]
}

// Title 推送标题
func Title(date string) string {
	return fmt.Sprintf("%s VC/PE 融资晨报", date)
}

// FailureTitle 失败报告标题
func FailureTitle(date string) string {
	return fmt.Sprintf("%s 晨报生成失败", date)
}

// Markdown 渲染晨报正文，strategy 为标题括号中的策略名
func Markdown(d *model.Digest, strategy string) (string, error) {
	if d == nil {
		return "", errors.New("digest is nil")
	}
	view := digestView{
		Digest:   d,
		Strategy: strategy,
		Sectors:  aggregate.Ranked(d.Stats.BySector),
		Stages:   aggregate.Ranked(d.Stats.ByStage),
	}

	var sb strings.Builder
	if err := digestTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return sb.String(), nil
}

// FailureMarkdown 渲染失败报告，statuses 为失败前已知的数据源状态
func FailureMarkdown(err error, statuses []model.FetchStatus) string {
	var sb strings.Builder
	sb.WriteString("## ❌ 晨报生成失败\n\n")
	fmt.Fprintf(&sb, "%v\n", err)
	if len(statuses) > 0 {
		sb.WriteString("\n## 🛰 数据源状态\n\n")
		for _, s := range statuses {
			fmt.Fprintf(&sb, "- %s：%s\n", s.SourceID, s)
		}
	}
	return sb.String()
}

// StrategyLabel 严格度对应的展示名
func StrategyLabel(strictness string) string {
	switch strictness {
	case config.StrictnessStrict:
		return "B策略"
	case config.StrictnessAction:
		return "动作词策略"
	case config.StrictnessKeyword:
		return "关键词策略"
	default:
		return strictness
	}
}
