// Package classify 基于关键词规则的事件、赛道、轮次判定
package classify

import "strings"

// KeywordSet 忽略大小写的子串匹配集合
type KeywordSet struct {
	words []string
}

// NewKeywordSet 构造关键词集合，空串被忽略
func NewKeywordSet(words []string) KeywordSet {
	ks := KeywordSet{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			ks.words = append(ks.words, w)
		}
	}
	return ks
}

// Match 返回第一个出现在 text 中的关键词
func (k KeywordSet) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, w := range k.words {
		if strings.Contains(lower, w) {
			return w, true
		}
	}
	return "", false
}

// Any text 是否包含任一关键词
func (k KeywordSet) Any(text string) bool {
	_, ok := k.Match(text)
	return ok
}

// Len 关键词个数
func (k KeywordSet) Len() int {
	return len(k.words)
}
