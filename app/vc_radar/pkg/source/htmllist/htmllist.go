// Package htmllist 基于 goquery 的 HTML 列表页数据源
package htmllist

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source"
)

// Selectors 列表页选择器。Title/Link 为空时取条目节点本身
type Selectors struct {
	Item    string
	Title   string
	Link    string
	Summary string
}

// Client HTML 列表页数据源
type Client struct {
	opts source.Options
	sel  Selectors
	log  logrus.FieldLogger
}

var _ source.Source = (*Client)(nil)

// NewClient 创建列表页数据源
func NewClient(opts source.Options, sel Selectors, log logrus.FieldLogger) *Client {
	return &Client{opts: opts, sel: sel, log: log}
}

func (c *Client) ID() string           { return c.opts.ID }
func (c *Client) Region() model.Region { return c.opts.Region }

// Fetch 抓取列表页并按选择器抽取条目
func (c *Client) Fetch(ctx context.Context) ([]model.RawItem, model.FetchStatus) {
	body, err := source.Get(ctx, c.opts.HTTPClient(), c.opts.URL, c.opts.UserAgent)
	if err != nil {
		c.log.Warnf("列表页抓取失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}

	items, err := c.Parse(body)
	if err != nil {
		c.log.Warnf("列表页解析失败 [%s]: %v", c.opts.ID, err)
		return nil, source.Fail(c.opts.ID, err)
	}
	return items, source.OK(c.opts.ID, len(items))
}

// Parse 解析列表页，跳过没有标题的节点，相对链接按页面地址补全
func (c *Client) Parse(body []byte) ([]model.RawItem, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	base, _ := url.Parse(c.opts.URL)

	var items []model.RawItem
	doc.Find(c.sel.Item).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if c.opts.MaxItems > 0 && len(items) >= c.opts.MaxItems {
			return false
		}

		titleNode := pick(s, c.sel.Title)
		title := strings.TrimSpace(titleNode.Text())
		if title == "" {
			return true
		}

		linkNode := pick(s, c.sel.Link)
		href, ok := linkNode.Attr("href")
		if !ok {
			href, _ = titleNode.Attr("href")
		}

		var summary string
		if c.sel.Summary != "" {
			summary = strings.TrimSpace(s.Find(c.sel.Summary).First().Text())
		}

		items = append(items, model.RawItem{
			Title:    title,
			Link:     resolve(base, href),
			Summary:  summary,
			SourceID: c.opts.ID,
			Region:   c.opts.Region,
		})
		return true
	})
	return items, nil
}

func pick(s *goquery.Selection, selector string) *goquery.Selection {
	if selector == "" {
		return s
	}
	return s.Find(selector).First()
}

func resolve(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
