package factory

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/config"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/article"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/htmllist"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/rss"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source/searxng"
)

// NewSource 根据配置创建数据源实例
func NewSource(sc config.SourceConfig, fetch config.FetchConfig, log logrus.FieldLogger) (source.Source, error) {
	opts := source.Options{
		ID:        sc.ID,
		URL:       sc.URL,
		Region:    model.Region(sc.Region),
		Timeout:   sc.TimeoutDuration(),
		MaxItems:  sc.MaxItems,
		UserAgent: fetch.UserAgent,
	}
	l := log.WithField("source", sc.ID)

	switch sc.Kind {
	case config.KindRSS:
		return rss.NewClient(opts, l), nil
	case config.KindHTML:
		if sc.Selectors.Item == "" {
			return nil, fmt.Errorf("html source %s: selectors.item is missing", sc.ID)
		}
		return htmllist.NewClient(opts, htmllist.Selectors{
			Item:    sc.Selectors.Item,
			Title:   sc.Selectors.Title,
			Link:    sc.Selectors.Link,
			Summary: sc.Selectors.Summary,
		}, l), nil
	case config.KindArticle:
		return article.NewClient(opts, l), nil
	case config.KindSearXNG:
		if sc.Query == "" {
			return nil, fmt.Errorf("searxng source %s: query is missing", sc.ID)
		}
		return searxng.NewClient(opts, sc.Query, l), nil
	default:
		return nil, fmt.Errorf("unknown source kind: %s", sc.Kind)
	}
}

// NewSources 按配置顺序创建全部数据源，顺序即抓取与合并顺序
func NewSources(cfg *config.Config, log logrus.FieldLogger) ([]source.Source, error) {
	sources := make([]source.Source, 0, len(cfg.Sources))
	for _, sc := range cfg.Sources {
		s, err := NewSource(sc, cfg.Fetch, log)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, nil
}
