// Package handler 提供 HTTP 请求处理器
package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"aws-architect-api/internal/domain/entity"
	"aws-architect-api/internal/domain/repository"
	redisinfra "aws-architect-api/internal/infrastructure/persistence/redis"
	"aws-architect-api/internal/interfaces/http/dto"
	"aws-architect-api/pkg/logger"
)

// artifactURLExpiry 交付物下载链接有效期
const artifactURLExpiry = time.Hour

// ProjectHandler 项目元数据处理器
type ProjectHandler struct {
	projects repository.ProjectRecordRepository
	store    repository.ObjectStore
	cache    *redisinfra.ProjectRecordCache
}

// NewProjectHandler 创建项目元数据处理器
// cache 可为 nil，缓存缺席时直查数据库
func NewProjectHandler(projects repository.ProjectRecordRepository, store repository.ObjectStore, cache *redisinfra.ProjectRecordCache) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		store:    store,
		cache:    cache,
	}
}

// GetByID 按项目 ID 查询元数据
// @Summary 查询项目
// @Tags Projects
// @Produce json
// @Success 200 {object} dto.ProjectView
// @Router /v1/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("id"))
	if projectID == "" {
		dto.BadRequest(c, "project id is required")
		return
	}

	ctx := c.Request.Context()

	if h.cache != nil {
		if record, err := h.cache.Get(ctx, projectID); err == nil && record != nil {
			dto.Success(c, dto.NewProjectView(record))
			return
		} else if err != nil {
			logger.Warn(ctx, "project cache lookup failed", "projectId", projectID, "error", err.Error())
		}
	}

	record, err := h.projects.GetByID(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "failed to load project record", err, "projectId", projectID)
		dto.InternalError(c, "failed to load project")
		return
	}
	if record == nil {
		dto.NotFound(c, "project not found")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, record); err != nil {
			logger.Warn(ctx, "project cache write failed", "projectId", projectID, "error", err.Error())
		}
	}

	dto.Success(c, dto.NewProjectView(record))
}

// List 按用户列出项目元数据
// @Summary 列出项目
// @Tags Projects
// @Produce json
// @Success 200 {array} dto.ProjectView
// @Router /v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		dto.BadRequest(c, "userId query parameter is required")
		return
	}

	records, err := h.projects.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list project records", err, "userId", userID)
		dto.InternalError(c, "failed to list projects")
		return
	}

	dto.Success(c, dto.NewProjectViews(records))
}

// ArtifactURL 为指定交付物生成限时下载链接
// @Summary 交付物下载链接
// @Tags Projects
// @Produce json
// @Success 200 {object} dto.ArtifactURLResponse
// @Router /v1/projects/{id}/artifacts/{kind}/url [get]
func (h *ProjectHandler) ArtifactURL(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("id"))
	kind := entity.ArtifactKind(strings.TrimSpace(c.Param("kind")))
	if projectID == "" || kind == "" {
		dto.BadRequest(c, "project id and artifact kind are required")
		return
	}

	ctx := c.Request.Context()

	record, err := h.projects.GetByID(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "failed to load project record", err, "projectId", projectID)
		dto.InternalError(c, "failed to load project")
		return
	}
	if record == nil {
		dto.NotFound(c, "project not found")
		return
	}

	var entry *entity.ArtifactIndexEntry
	for i := range record.ArtifactIndex {
		if record.ArtifactIndex[i].Kind == kind && record.ArtifactIndex[i].Error == "" {
			entry = &record.ArtifactIndex[i]
			break
		}
	}
	if entry == nil {
		dto.NotFound(c, "artifact not found")
		return
	}

	url, err := h.store.PresignedGetURL(ctx, entry.ObjectKey, artifactURLExpiry)
	if err != nil {
		logger.Error(ctx, "failed to presign artifact url", err, "key", entry.ObjectKey)
		dto.InternalError(c, "failed to generate download url")
		return
	}

	dto.Success(c, dto.ArtifactURLResponse{
		Key:       entry.ObjectKey,
		URL:       url,
		ExpiresIn: int64(artifactURLExpiry.Seconds()),
	})
}
