package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/source"
)

var articleHTML = `<html><head><title>某量子计算公司完成5亿元B轮融资</title></head>
<body><article><h1>某量子计算公司完成5亿元B轮融资</h1>
<p>` + strings.Repeat("本轮融资由国资基金领投，资金将用于量子芯片研发与团队扩张。", 12) + `</p>
<p>` + strings.Repeat("公司成立于2019年，专注于超导量子计算机的研发与制造。", 12) + `</p>
</article></body></html>`

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	c := NewClient(source.Options{ID: "page", URL: srv.URL + "/post/1", Region: model.RegionCN}, logger.Discard())
	items, status := c.Fetch(context.Background())
	require.True(t, status.OK, status.Reason)
	require.Len(t, items, 1)
	assert.Equal(t, "OK(1)", status.String())

	assert.Contains(t, items[0].Title, "量子计算公司")
	assert.Equal(t, srv.URL+"/post/1", items[0].Link)
	assert.Contains(t, items[0].Summary, "量子")
}

func TestClient_Fetch_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(source.Options{ID: "page", URL: srv.URL}, logger.Discard())
	items, status := c.Fetch(context.Background())
	assert.Nil(t, items)
	assert.False(t, status.OK)
	assert.Contains(t, status.Reason, "404")
}
