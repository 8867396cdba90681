// Package artifact 实现交付物生成与持久化
package artifact

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"aws-architect-api/internal/domain/entity"
	"aws-architect-api/internal/domain/repository"
	"aws-architect-api/pkg/logger"
	"aws-architect-api/pkg/metrics"
)

var tracer = otel.Tracer("artifact")

// StoragePrefix 对象存储中项目专属的 key 前缀
func StoragePrefix(userID, projectID string) string {
	return "projects/" + userID + "/" + projectID + "/"
}

// Sink 交付物持久化：对象存储写入 + 元数据表更新
// 尽力而为语义，单个文件失败不阻断其余写入
type Sink struct {
	store    repository.ObjectStore
	projects repository.ProjectRecordRepository
}

// NewSink 创建持久化组件
func NewSink(store repository.ObjectStore, projects repository.ProjectRecordRepository) *Sink {
	return &Sink{store: store, projects: projects}
}

// Persist 按固定顺序写入交付物并更新元数据行
// 返回写入索引与元数据更新是否成功；只要有一个文件写入成功，
// 元数据行状态即为 completed
func (s *Sink) Persist(ctx context.Context, d *entity.ProjectDescriptor, set entity.ArtifactSet) (entity.ArtifactIndex, bool) {
	ctx, span := tracer.Start(ctx, "Sink.Persist")
	defer span.End()
	span.SetAttributes(
		attribute.String("project.id", d.ProjectID),
		attribute.Int("artifact.count", len(set)),
	)

	prefix := StoragePrefix(d.UserID, d.ProjectID)
	index := make(entity.ArtifactIndex, 0, len(set))

	for _, kind := range entity.ArtifactKindsOrdered {
		a, ok := set[kind]
		if !ok {
			continue
		}

		key := prefix + a.Filename
		entry := entity.ArtifactIndexEntry{
			Kind:      kind,
			ObjectKey: key,
			SizeBytes: int64(len(a.Data)),
		}

		if err := s.store.Put(ctx, key, a.ContentType, a.Data); err != nil {
			entry.Error = err.Error()
			logger.Error(ctx, "artifact upload failed", err,
				"kind", string(kind), "key", key)
			metrics.ArtifactPersistTotal.WithLabelValues(string(kind), "error").Inc()
		} else {
			metrics.ArtifactPersistTotal.WithLabelValues(string(kind), "success").Inc()
			metrics.ArtifactBytesWritten.WithLabelValues(string(kind)).Add(float64(len(a.Data)))
		}
		index = append(index, entry)
	}

	record := entity.NewProjectRecord(d, prefix)
	record.ArtifactIndex = index
	if index.Succeeded() > 0 {
		record.Status = entity.ProjectStatusCompleted
	}

	metadataOK := true
	if err := s.projects.Upsert(ctx, record); err != nil {
		metadataOK = false
		logger.Error(ctx, "project record upsert failed", err,
			"projectId", d.ProjectID)
	}

	return index, metadataOK
}
