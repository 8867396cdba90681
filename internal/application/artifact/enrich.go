// Package artifact 实现交付物生成与持久化
package artifact

import (
	"context"

	"aws-architect-api/internal/domain/entity"
)

// Enricher 可选的外部内容增强器
// 返回 false 表示无增强内容；实现缺席或失败都不得影响生成流程，
// 生成器的兜底内容始终兜住
type Enricher interface {
	Enrich(ctx context.Context, kind entity.ArtifactKind, payload string) (string, bool)
}

// NoopEnricher 空实现
type NoopEnricher struct{}

// Enrich 永远返回无增强
func (NoopEnricher) Enrich(context.Context, entity.ArtifactKind, string) (string, bool) {
	return "", false
}
