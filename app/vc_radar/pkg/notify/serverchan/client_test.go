package serverchan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/logger"
	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/notify"
)

func TestClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/SCTkey.send", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2026-10-14 VC/PE 晨报", r.PostForm.Get("title"))
		assert.Equal(t, "# body", r.PostForm.Get("desp"))
		_, _ = w.Write([]byte(`{"code":0,"message":""}`))
	}))
	defer srv.Close()

	c, err := NewClient("SCTkey", srv.URL+"/", 5, logger.Discard())
	require.NoError(t, err)
	assert.NoError(t, c.Send(context.Background(), "2026-10-14 VC/PE 晨报", "# body"))
}

func TestClient_Send_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"http status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, "status 500"},
		{"api code", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":40001,"message":"bad sendkey"}`))
		}, "bad sendkey"},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`oops`))
		}, "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c, err := NewClient("k", srv.URL, 5, logger.Discard())
			require.NoError(t, err)

			err = c.Send(context.Background(), "t", "b")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var de *notify.DeliveryError
			assert.ErrorAs(t, err, &de)
		})
	}
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient("", "", 0, logger.Discard())
	assert.ErrorIs(t, err, ErrMissingSendKey)
}
