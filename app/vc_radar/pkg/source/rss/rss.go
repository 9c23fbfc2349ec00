// Package rss 基于 gofeed 的 RSS/Atom 数据源
package rss

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source"
)

// Client RSS 数据源
type Client struct {
	opts   source.Options
	parser *gofeed.Parser
	log    logrus.FieldLogger
}

var _ source.Source = (*Client)(nil)

// NewClient 创建 RSS 数据源
func NewClient(opts source.Options, log logrus.FieldLogger) *Client {
	return &Client{opts: opts, parser: gofeed.NewParser(), log: log}
}

func (c *Client) ID() string           { return c.opts.ID }
func (c *Client) Region() model.Region { return c.opts.Region }

// Fetch 抓取并解析 feed，最多取 MaxItems 条
func (c *Client) Fetch(ctx context.Context) ([]model.RawItem, model.FetchStatus) {
	body, err := source.Get(ctx, c.opts.HTTPClient(), c.opts.URL, c.opts.UserAgent)
	if err != nil {
		c.log.Warnf("RSS 抓取失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}

	items, err := c.Parse(body)
	if err != nil {
		c.log.Warnf("RSS 解析失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}
	return items, source.OK(c.opts.ID, len(items))
}

// Parse 把 feed 正文转为原始条目，标题与摘要保持未清洗状态
func (c *Client) Parse(body []byte) ([]model.RawItem, error) {
	feed, err := c.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]model.RawItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if c.opts.MaxItems > 0 && len(items) >= c.opts.MaxItems {
			break
		}
		items = append(items, model.RawItem{
			Title:       entry.Title,
			Link:        extractLink(entry),
			Summary:     summaryOf(entry),
			PublishedAt: formatPublishedAt(entry.PublishedParsed),
			SourceID:    c.opts.ID,
			Region:      c.opts.Region,
		})
	}
	return items, nil
}

func extractLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}
	if strings.HasPrefix(entry.GUID, "http") {
		return entry.GUID
	}
	return ""
}

func summaryOf(entry *gofeed.Item) string {
	if entry.Description != "" {
		return entry.Description
	}
	return entry.Content
}

func formatPublishedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
