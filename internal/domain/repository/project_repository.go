// Package repository 定义领域仓储接口
package repository

import (
	"context"

	"aws-architect-api/internal/domain/entity"
)

// ProjectRecordRepository 项目元数据仓储
// Upsert 以 project_id 为键整行覆盖，artifact_index 总是替换而非合并
type ProjectRecordRepository interface {
	Upsert(ctx context.Context, record *entity.ProjectRecord) error
	GetByID(ctx context.Context, projectID string) (*entity.ProjectRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.ProjectRecord, error)
}
