// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"aws-architect-api/internal/domain/entity"
)

// ProjectView 项目元数据视图
type ProjectView struct {
	ProjectID      string              `json:"projectId"`
	UserID         string              `json:"userId"`
	Name           string              `json:"name"`
	Kind           string              `json:"kind"`
	PrimaryService string              `json:"primaryService"`
	Status         string              `json:"status"`
	StoragePrefix  string              `json:"storagePrefix"`
	Documents      []GeneratedDocument `json:"documents"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ArtifactURLResponse 交付物下载链接响应
type ArtifactURLResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresInSeconds"`
}

// NewProjectView 从元数据行组装视图
func NewProjectView(record *entity.ProjectRecord) ProjectView {
	docs := make([]GeneratedDocument, 0, len(record.ArtifactIndex))
	for _, e := range record.ArtifactIndex {
		docs = append(docs, GeneratedDocument{
			Kind:  string(e.Kind),
			Key:   e.ObjectKey,
			Size:  e.SizeBytes,
			Error: e.Error,
		})
	}
	return ProjectView{
		ProjectID:      record.ProjectID,
		UserID:         record.UserID,
		Name:           record.Name,
		Kind:           string(record.Kind),
		PrimaryService: record.PrimaryService,
		Status:         string(record.Status),
		StoragePrefix:  record.StoragePrefix,
		Documents:      docs,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

// NewProjectViews 批量组装视图
func NewProjectViews(records []*entity.ProjectRecord) []ProjectView {
	views := make([]ProjectView, 0, len(records))
	for _, r := range records {
		views = append(views, NewProjectView(r))
	}
	return views
}
