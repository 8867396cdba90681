// Package router 提供 HTTP 路由配置
package router

import (
	"aws-architect-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	chatHandler *handler.ChatHandler,
	projectHandler *handler.ProjectHandler,
) {
	// 访谈对话
	interview := v1.Group("/interview")
	{
		interview.POST("/chat", chatHandler.Chat)
	}

	// 项目元数据
	projects := v1.Group("/projects")
	{
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.GetByID)
		projects.GET("/:id/artifacts/:kind/url", projectHandler.ArtifactURL)
	}
}
