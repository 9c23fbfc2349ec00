package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`
sources:
  - url: https://rsshub.app/36kr/investment
`))
	require.NoError(t, err)

	require.Len(t, cfg.Sources, 1)
	s := cfg.Sources[0]
	assert.Equal(t, KindRSS, s.Kind)
	assert.Equal(t, "cn", s.Region)
	assert.Equal(t, 40, s.MaxItems)
	assert.Equal(t, s.URL, s.ID)
	assert.Equal(t, "20s", s.TimeoutDuration().String())

	assert.Equal(t, StrictnessStrict, cfg.Rules.Strictness)
	assert.True(t, cfg.Rules.ShouldDropUnclassified())
	assert.Equal(t, DefaultRules().Sectors, cfg.Rules.Sectors)
	assert.Equal(t, Caps{Deals: 15, Funds: 8, Overseas: 5}, cfg.Caps)
	assert.Equal(t, 4, cfg.Watchlist.TopN)
	assert.Equal(t, "SENDKEY", cfg.Notify.SendKeyEnv)
	assert.True(t, cfg.Notify.ReportFailures)
}

func TestParse_RulesOverridePerField(t *testing.T) {
	cfg, err := Parse([]byte(`
rules:
  strictness: action
  drop_unclassified: false
  sectors:
    - tag: 储能
      keywords: [储能, 电池]
`))
	require.NoError(t, err)

	assert.Equal(t, StrictnessAction, cfg.Rules.Strictness)
	assert.False(t, cfg.Rules.ShouldDropUnclassified())
	require.Len(t, cfg.Rules.Sectors, 1)
	assert.Equal(t, "储能", cfg.Rules.Sectors[0].Tag)
	assert.Equal(t, DefaultRules().ActionWords, cfg.Rules.ActionWords)
	assert.Equal(t, DefaultRules().Rounds, cfg.Rules.Rounds)
	assert.Equal(t, 7.2, cfg.Rules.USDToRMB)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown kind", "sources: [{id: a, kind: ftp, url: x}]", `unknown kind "ftp"`},
		{"unknown region", "sources: [{id: a, url: x, region: mars}]", `unknown region "mars"`},
		{"html without selectors", "sources: [{id: a, kind: html, url: x}]", "selectors.item"},
		{"searxng without query", "sources: [{id: a, kind: searxng, url: x}]", "needs query"},
		{"empty url", "sources: [{id: a}]", "url is empty"},
		{"strictness", "rules: {strictness: loose}", `unknown strictness "loose"`},
		{"rate", "rules: {usd_to_rmb: -1}", "usd_to_rmb must be positive"},
		{"amount group", `rules: {amount_pattern: '\d+'}`, "missing (?P<num>...) group"},
		{"amount regexp", `rules: {amount_pattern: '('}`, "amount_pattern"},
		{"round stage", "rules: {rounds: [{pattern: 'x轮', stage: 天使}]}", `unknown stage "天使"`},
		{"yaml", "sources: {", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultRules_Valid(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: debug}\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
