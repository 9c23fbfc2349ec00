package engine

import (
	"errors"
	"fmt"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

var (
	// ErrNoSources 未配置任何数据源
	ErrNoSources = errors.New("no sources configured")
	// ErrAllSourcesFailed 所有数据源均抓取失败，无法生成晨报
	ErrAllSourcesFailed = errors.New("all sources failed")
)

// RunError 整次运行失败。单个数据源失败不会产生 RunError
type RunError struct {
	RunID    string
	Statuses []model.FetchStatus
	Err      error
}

func (e *RunError) Error() string {
	if len(e.Statuses) == 0 {
		return fmt.Sprintf("run %s: %v", e.RunID, e.Err)
	}
	return fmt.Sprintf("run %s: %v (%d sources)", e.RunID, e.Err, len(e.Statuses))
}

func (e *RunError) Unwrap() error {
	return e.Err
}
