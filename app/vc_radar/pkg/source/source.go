// Package source 数据源抽象：RSS、HTML 列表页、单篇文章页、SearXNG 检索
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

// Source 定义通用的数据源接口。抓取失败通过 FetchStatus 上报，不返回 error
type Source interface {
	ID() string
	Region() model.Region
	Fetch(ctx context.Context) ([]model.RawItem, model.FetchStatus)
}

// Options 各类数据源共用的抓取参数
type Options struct {
	ID        string
	URL       string
	Region    model.Region
	Timeout   time.Duration
	MaxItems  int
	UserAgent string
}

// HTTPClient 每个数据源自带超时
func (o Options) HTTPClient() *http.Client {
	t := o.Timeout
	if t == 0 {
		t = 20 * time.Second
	}
	return &http.Client{Timeout: t}
}

// OK 成功状态
func OK(id string, n int) model.FetchStatus {
	return model.FetchStatus{SourceID: id, OK: true, Count: n}
}

// Fail 失败状态
func Fail(id string, err error) model.FetchStatus {
	return model.FetchStatus{SourceID: id, Reason: err.Error()}
}

// Get 发起 GET 请求并读取响应体，非 200 视为失败
func Get(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	if userAgent != "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}

	res, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return body, nil
}
