// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"aws-architect-api/internal/domain/entity"
)

const defaultProjectsTable = "project_records"

// ProjectRecordRepository 项目元数据仓储实现
type ProjectRecordRepository struct {
	db    Querier
	table string
}

// NewProjectRecordRepository 创建项目元数据仓储
func NewProjectRecordRepository(client *Client) *ProjectRecordRepository {
	table := defaultProjectsTable
	if client.config != nil && client.config.ProjectsTable != "" {
		table = client.config.ProjectsTable
	}
	return &ProjectRecordRepository{db: client.db, table: table}
}

// Upsert 以 project_id 为键整行覆盖
// 冲突时保留 created_at，artifact_index 整体替换
func (r *ProjectRecordRepository) Upsert(ctx context.Context, record *entity.ProjectRecord) error {
	ctx, span := tracer.Start(ctx, "postgres.ProjectRecordRepository.Upsert")
	defer span.End()

	indexJSON, err := json.Marshal(record.ArtifactIndex)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact index: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, user_id, name, kind, primary_service, status,
			storage_prefix, artifact_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (project_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			name = EXCLUDED.name,
			kind = EXCLUDED.kind,
			primary_service = EXCLUDED.primary_service,
			status = EXCLUDED.status,
			storage_prefix = EXCLUDED.storage_prefix,
			artifact_index = EXCLUDED.artifact_index,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`, r.table)

	err = r.db.QueryRowContext(ctx, query,
		record.ProjectID, record.UserID, record.Name, string(record.Kind),
		record.PrimaryService, string(record.Status), record.StoragePrefix, indexJSON,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upsert project record: %w", err)
	}

	return nil
}

// GetByID 根据项目 ID 获取元数据行，不存在时返回 (nil, nil)
func (r *ProjectRecordRepository) GetByID(ctx context.Context, projectID string) (*entity.ProjectRecord, error) {
	ctx, span := tracer.Start(ctx, "postgres.ProjectRecordRepository.GetByID")
	defer span.End()

	query := fmt.Sprintf(`
		SELECT project_id, user_id, name, kind, primary_service, status,
			storage_prefix, artifact_index, created_at, updated_at
		FROM %s
		WHERE project_id = $1
	`, r.table)

	record, err := scanProjectRecord(r.db.QueryRowContext(ctx, query, projectID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get project record: %w", err)
	}
	return record, nil
}

// ListByUser 按用户列出元数据行，最近更新在前
func (r *ProjectRecordRepository) ListByUser(ctx context.Context, userID string) ([]*entity.ProjectRecord, error) {
	ctx, span := tracer.Start(ctx, "postgres.ProjectRecordRepository.ListByUser")
	defer span.End()

	query := fmt.Sprintf(`
		SELECT project_id, user_id, name, kind, primary_service, status,
			storage_prefix, artifact_index, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, r.table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list project records: %w", err)
	}
	defer rows.Close()

	var records []*entity.ProjectRecord
	for rows.Next() {
		record, err := scanProjectRecord(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan project record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to iterate project records: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProjectRecord(row rowScanner) (*entity.ProjectRecord, error) {
	var record entity.ProjectRecord
	var kind, status string
	var indexJSON []byte

	err := row.Scan(
		&record.ProjectID, &record.UserID, &record.Name, &kind,
		&record.PrimaryService, &status, &record.StoragePrefix, &indexJSON,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Kind = entity.ProjectKind(kind)
	record.Status = entity.ProjectStatus(status)
	if len(indexJSON) > 0 {
		if err := json.Unmarshal(indexJSON, &record.ArtifactIndex); err != nil {
			return nil, fmt.Errorf("failed to unmarshal artifact index: %w", err)
		}
	}
	return &record, nil
}
