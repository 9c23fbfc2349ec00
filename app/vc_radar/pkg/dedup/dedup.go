// Package dedup 跨数据源去重
package dedup

// ByKey 按 keyOf 去重，保留首次出现的条目及其相对顺序；max <= 0 表示不限条数
func ByKey[T any](items []T, keyOf func(T) string, max int) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if max > 0 && len(out) >= max {
			break
		}
		k := keyOf(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Titled 可取标题的条目
type Titled interface {
	GetTitle() string
}

// ByTitle 以标题为唯一键去重。同一模板标题的不同事件也会被合并
func ByTitle[T Titled](items []T, max int) []T {
	return ByKey(items, func(it T) string { return it.GetTitle() }, max)
}
