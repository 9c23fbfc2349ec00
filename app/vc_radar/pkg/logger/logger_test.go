package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatter_Format(t *testing.T) {
	entry := logrus.NewEntry(logrus.New())
	entry.Time = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	entry.Level = logrus.WarnLevel
	entry.Message = "数据源失败"
	entry.Data = logrus.Fields{"source": "36kr", "run_id": "r1"}

	out, err := (&CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[2026-10-14 08:00:00] [WARN] [] 数据源失败 run_id=r1 source=36kr\n", string(out))
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New("bogus", path)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Info("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] [logger_test.go:")
	assert.Contains(t, string(data), "hello")
}
