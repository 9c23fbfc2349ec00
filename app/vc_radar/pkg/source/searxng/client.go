// Package searxng 把 SearXNG 新闻搜索结果当作数据源
package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source"
)

// Client SearXNG 数据源，URL 为实例地址，Query 为检索词
type Client struct {
	opts  source.Options
	query string
	log   logrus.FieldLogger
}

var _ source.Source = (*Client)(nil)

// NewClient 创建 SearXNG 数据源
func NewClient(opts source.Options, query string, log logrus.FieldLogger) *Client {
	return &Client{opts: opts, query: query, log: log}
}

func (c *Client) ID() string           { return c.opts.ID }
func (c *Client) Region() model.Region { return c.opts.Region }

// searchResponse SearXNG 响应结构
type searchResponse struct {
	Query   string         `json:"query"`
	Results []searchResult `json:"results"`
}

// searchResult SearXNG 单条结果
type searchResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	PublishedDate string `json:"publishedDate"` // 不同版本可能为空
}

// Fetch 以 news 分类检索，最多取 MaxItems 条
func (c *Client) Fetch(ctx context.Context) ([]model.RawItem, model.FetchStatus) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, source.Fail(c.opts.ID, err)
	}

	body, err := source.Get(ctx, c.opts.HTTPClient(), endpoint, c.opts.UserAgent)
	if err != nil {
		c.log.Warnf("SearXNG 检索失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}

	items, err := c.Parse(body)
	if err != nil {
		c.log.Warnf("SearXNG 响应解析失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}
	return items, source.OK(c.opts.ID, len(items))
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.opts.URL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/search"

	q := u.Query()
	q.Set("q", c.query)
	q.Set("format", "json")
	q.Set("categories", "news")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Parse 把 JSON 响应转为原始条目
func (c *Client) Parse(body []byte) ([]model.RawItem, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	items := make([]model.RawItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		if c.opts.MaxItems > 0 && len(items) >= c.opts.MaxItems {
			break
		}
		items = append(items, model.RawItem{
			Title:       r.Title,
			Link:        r.URL,
			Summary:     r.Content,
			PublishedAt: r.PublishedDate,
			SourceID:    c.opts.ID,
			Region:      c.opts.Region,
		})
	}
	return items, nil
}
