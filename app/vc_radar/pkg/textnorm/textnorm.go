// Package textnorm 清洗 RSS/HTML 中的标题与摘要文本
package textnorm

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRe = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// Normalize 去掉标签、还原实体、全角转半角并压缩空白
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := tagRe.ReplaceAllString(raw, "")
	s = html.UnescapeString(s)
	s = foldWidth(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// foldWidth 把全角数字、字母及金额/轮次相关符号折成半角，其余中文标点保持原样
func foldWidth(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if foldable(r) {
			sb.WriteString(width.Narrow.String(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func foldable(r rune) bool {
	switch {
	case r >= '０' && r <= '９', r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ':
		return true
	case r == '＋', r == '－', r == '．', r == '＄', r == '\u3000':
		return true
	}
	return false
}

// Truncate 按字符（rune）截断到最多 n 个
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
