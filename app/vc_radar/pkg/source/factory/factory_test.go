package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/article"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/htmllist"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/rss"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/searxng"
)

func TestNewSources_PreservesOrder(t *testing.T) {
	cfg := &config.Config{
		Sources: []config.SourceConfig{
			{ID: "36kr", Kind: config.KindRSS, URL: "https://a/feed", Region: "cn"},
			{ID: "list", Kind: config.KindHTML, URL: "https://b/", Region: "cn", Selectors: config.SelectorsConfig{Item: "li"}},
			{ID: "tc", Kind: config.KindArticle, URL: "https://c/post", Region: "overseas"},
			{ID: "searx", Kind: config.KindSearXNG, URL: "http://localhost:8888", Region: "cn", Query: "完成融资"},
		},
	}

	sources, err := NewSources(cfg, logger.Discard())
	require.NoError(t, err)
	require.Len(t, sources, 4)

	assert.IsType(t, &rss.Client{}, sources[0])
	assert.IsType(t, &htmllist.Client{}, sources[1])
	assert.IsType(t, &article.Client{}, sources[2])
	assert.IsType(t, &searxng.Client{}, sources[3])
	assert.Equal(t, []string{"36kr", "list", "tc", "searx"}, []string{sources[0].ID(), sources[1].ID(), sources[2].ID(), sources[3].ID()})
	assert.Equal(t, model.RegionOverseas, sources[2].Region())
}

func TestNewSource_Errors(t *testing.T) {
	_, err := NewSource(config.SourceConfig{ID: "x", Kind: "ftp"}, config.FetchConfig{}, logger.Discard())
	assert.Error(t, err)

	_, err = NewSource(config.SourceConfig{ID: "x", Kind: config.KindHTML}, config.FetchConfig{}, logger.Discard())
	assert.Error(t, err)

	_, err = NewSource(config.SourceConfig{ID: "x", Kind: config.KindSearXNG}, config.FetchConfig{}, logger.Discard())
	assert.Error(t, err)
}
