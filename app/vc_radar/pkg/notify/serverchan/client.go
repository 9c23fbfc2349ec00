// Package serverchan Server 酱推送（https://sctapi.ftqq.com）
package serverchan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/notify"
)

const defaultBaseURL = "https://sctapi.ftqq.com"

// ErrMissingSendKey 未提供 SendKey
var ErrMissingSendKey = errors.New("serverchan sendkey is empty")

// Client Server 酱客户端，SendKey 由调用方显式传入
type Client struct {
	sendKey string
	baseURL string
	client  *http.Client
	log     logrus.FieldLogger
}

var _ notify.Sink = (*Client)(nil)

// NewClient 创建客户端，baseURL 为空时使用官方地址，timeout 单位为秒
func NewClient(sendKey, baseURL string, timeout int, log logrus.FieldLogger) (*Client, error) {
	if sendKey == "" {
		return nil, ErrMissingSendKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 20 * time.Second
	}
	return &Client{
		sendKey: sendKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: t},
		log:     log,
	}, nil
}

// sendResponse Server 酱响应
type sendResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send 推送一条消息，title 为标题，body 为 Markdown 正文
func (c *Client) Send(ctx context.Context, title, body string) error {
	if err := c.send(ctx, title, body); err != nil {
		return &notify.DeliveryError{Sink: "serverchan", Err: err}
	}
	c.log.Infof("推送成功: %s", title)
	return nil
}

func (c *Client) send(ctx context.Context, title, body string) error {
	form := url.Values{}
	form.Set("title", title)
	form.Set("desp", body)

	endpoint := fmt.Sprintf("%s/%s.send", c.baseURL, c.sendKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("serverchan api error (status %d): %s", res.StatusCode, string(respBody))
	}

	var resp sendResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("unmarshal response failed: %w", err)
	}
	if resp.Code != 0 {
		return fmt.Errorf("serverchan api error (code %d): %s", resp.Code, resp.Message)
	}
	return nil
}
