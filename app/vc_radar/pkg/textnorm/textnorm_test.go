package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"strip tags", "<p>某公司<b>完成</b>融资</p>", "某公司完成融资"},
		{"collapse whitespace", "  某公司 \n\t 完成   融资 ", "某公司 完成 融资"},
		{"unescape entities", "A&amp;B&nbsp;Capital", "A&B Capital"},
		{"full width digits", "完成１．５亿元Ａ＋轮融资", "完成1.5亿元A+轮融资"},
		{"ideographic space", "完成　融资", "完成 融资"},
		{"chinese punctuation kept", "获投，金额：未披露", "获投，金额：未披露"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "人工", Truncate("人工智能", 2))
	assert.Equal(t, "人工智能", Truncate("人工智能", 10))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
