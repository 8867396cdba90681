// Package handler 提供 HTTP 请求处理器
package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"aws-architect-api/internal/application/interview"
	"aws-architect-api/internal/domain/entity"
	"aws-architect-api/internal/interfaces/http/dto"
	apperrors "aws-architect-api/pkg/errors"
	"aws-architect-api/pkg/logger"
)

// ChatHandler 访谈对话处理器
type ChatHandler struct {
	pipeline *interview.Pipeline
}

// NewChatHandler 创建访谈对话处理器
func NewChatHandler(pipeline *interview.Pipeline) *ChatHandler {
	return &ChatHandler{pipeline: pipeline}
}

// Chat 处理一轮访谈对话
// @Summary 访谈对话
// @Description 生成访谈回复，就绪时触发交付物生成
// @Tags Interview
// @Accept json
// @Produce json
// @Success 200 {object} dto.ChatResponse
// @Router /v1/interview/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if len(req.Messages) == 0 {
		dto.BadRequest(c, "messages are required")
		return
	}
	if last := req.Messages[len(req.Messages)-1]; strings.TrimSpace(last.Content) == "" || entity.Role(last.Role) != entity.RoleUser {
		dto.BadRequest(c, "last message must be a non-empty user turn")
		return
	}

	ctx := c.Request.Context()
	if projectID := strings.TrimSpace(req.ProjectID); projectID != "" {
		ctx = logger.WithContext(ctx, logger.ProjectIDKey, projectID)
	}

	result, err := h.pipeline.Run(ctx, &interview.Request{
		Messages:  req.ToTurns(),
		ModelID:   req.ModelID,
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
	})
	if err != nil {
		appErr := apperrors.AsAppError(err)
		dto.Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	c.JSON(200, dto.NewChatResponse(req.ModelID, result))
}
