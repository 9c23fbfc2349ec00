// Package article 单篇文章页数据源：用 readability 提取标题与正文，产出一条条目
package article

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source"
)

// Client 文章页数据源
type Client struct {
	opts source.Options
	log  logrus.FieldLogger
}

var _ source.Source = (*Client)(nil)

// NewClient 创建文章页数据源
func NewClient(opts source.Options, log logrus.FieldLogger) *Client {
	return &Client{opts: opts, log: log}
}

func (c *Client) ID() string           { return c.opts.ID }
func (c *Client) Region() model.Region { return c.opts.Region }

// Fetch 抓取文章页
func (c *Client) Fetch(ctx context.Context) ([]model.RawItem, model.FetchStatus) {
	body, err := source.Get(ctx, c.opts.HTTPClient(), c.opts.URL, c.opts.UserAgent)
	if err != nil {
		c.log.Warnf("文章页抓取失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}

	item, err := c.Parse(body)
	if err != nil {
		c.log.Warnf("文章页解析失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}
	return []model.RawItem{item}, source.OK(c.opts.ID, 1)
}

// Parse 提取正文，摘要取 readability 的 Excerpt，缺失时取正文
func (c *Client) Parse(body []byte) (model.RawItem, error) {
	pageURL, err := url.Parse(c.opts.URL)
	if err != nil {
		return model.RawItem{}, fmt.Errorf("invalid url: %w", err)
	}

	art, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return model.RawItem{}, fmt.Errorf("readability: %w", err)
	}
	if art.Title == "" {
		return model.RawItem{}, fmt.Errorf("readability: empty title")
	}

	summary := art.Excerpt
	if summary == "" {
		summary = art.TextContent
	}

	item := model.RawItem{
		Title:    art.Title,
		Link:     c.opts.URL,
		Summary:  summary,
		SourceID: c.opts.ID,
		Region:   c.opts.Region,
	}
	if art.PublishedTime != nil {
		item.PublishedAt = art.PublishedTime.Format(time.RFC3339)
	}
	return item, nil
}
