// Package entity 定义领域实体
package entity

import "time"

// ProjectStatus 项目生命周期状态
type ProjectStatus string

const (
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// ProjectRecord 项目元数据行，以 project_id 为主键
// 首次请求时创建，每次生成完成后整行覆盖更新，核心永不删除
type ProjectRecord struct {
	ProjectID      string        `json:"project_id"`
	UserID         string        `json:"user_id"`
	Name           string        `json:"name"`
	Kind           ProjectKind   `json:"kind"`
	PrimaryService string        `json:"primary_service"`
	Status         ProjectStatus `json:"status"`
	StoragePrefix  string        `json:"storage_prefix"`
	ArtifactIndex  ArtifactIndex `json:"artifact_index"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewProjectRecord 从描述符创建元数据行
func NewProjectRecord(d *ProjectDescriptor, prefix string) *ProjectRecord {
	now := time.Now().UTC()
	return &ProjectRecord{
		ProjectID:      d.ProjectID,
		UserID:         d.UserID,
		Name:           d.Name,
		Kind:           d.Kind,
		PrimaryService: d.PrimaryService,
		Status:         ProjectStatusInProgress,
		StoragePrefix:  prefix,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
