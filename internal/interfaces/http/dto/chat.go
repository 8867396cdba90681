// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"aws-architect-api/internal/application/interview"
	"aws-architect-api/internal/domain/entity"
)

// ChatMessage 请求中的单条对话消息
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest 访谈对话请求
type ChatRequest struct {
	Messages  []ChatMessage `json:"messages" binding:"required"`
	ModelID   string        `json:"modelId"`
	ProjectID string        `json:"projectId"`
	UserID    string        `json:"userId"`
}

// ReadinessCriteria 就绪度四项指标
type ReadinessCriteria struct {
	ProjectName       bool `json:"project_name"`
	ProjectKind       bool `json:"project_kind"`
	TechnicalDetails  bool `json:"technical_details"`
	SufficientContext bool `json:"sufficient_context"`
}

// GeneratedDocument 生成的单个交付物
type GeneratedDocument struct {
	Kind  string `json:"kind"`
	Key   string `json:"key"`
	Size  int64  `json:"size"`
	Error string `json:"error,omitempty"`
}

// DocumentGeneration 交付物生成结果
// metadataSaved 为 false 表示元数据行写入失败，文件本身可能已持久化
type DocumentGeneration struct {
	Generated     bool                `json:"generated"`
	Folder        string              `json:"folder"`
	MetadataSaved bool                `json:"metadataSaved"`
	Documents     []GeneratedDocument `json:"documents"`
}

// ChatResponse 访谈对话响应（扁平结构）
// specificService 在未识别出具体服务时为 null
type ChatResponse struct {
	Content            string              `json:"content"`
	ModelID            string              `json:"modelId"`
	ProjectID          string              `json:"projectId"`
	IsComplete         bool                `json:"isComplete"`
	ReadinessScore     float64             `json:"readinessScore"`
	ReadinessCriteria  ReadinessCriteria   `json:"readinessCriteria"`
	SpecificService    *string             `json:"specificService"`
	DocumentGeneration *DocumentGeneration `json:"documentGeneration,omitempty"`
}

// ToTurns 转换请求消息为领域轮次
func (r *ChatRequest) ToTurns() []entity.Turn {
	turns := make([]entity.Turn, 0, len(r.Messages))
	for _, m := range r.Messages {
		turns = append(turns, entity.Turn{
			Role:    entity.Role(m.Role),
			Content: m.Content,
		})
	}
	return turns
}

// NewChatResponse 从管道结果组装响应
func NewChatResponse(modelID string, result *interview.Result) ChatResponse {
	resp := ChatResponse{
		Content:   result.Reply,
		ModelID:   modelID,
		ProjectID: result.Descriptor.ProjectID,
		ReadinessCriteria: ReadinessCriteria{
			ProjectName:       result.Readiness.HasProjectName,
			ProjectKind:       result.Readiness.HasProjectKind,
			TechnicalDetails:  result.Readiness.HasTechnicalTerms,
			SufficientContext: result.Readiness.HasEnoughTurns,
		},
		ReadinessScore: result.Readiness.Score,
	}

	if svc := result.Descriptor.PrimaryService; svc != entity.DefaultPrimaryService {
		resp.SpecificService = &svc
	}

	if gen := result.Generation; gen != nil {
		docs := make([]GeneratedDocument, 0, len(gen.Index))
		for _, e := range gen.Index {
			docs = append(docs, GeneratedDocument{
				Kind:  string(e.Kind),
				Key:   e.ObjectKey,
				Size:  e.SizeBytes,
				Error: e.Error,
			})
		}
		resp.DocumentGeneration = &DocumentGeneration{
			Generated:     gen.Generated,
			Folder:        gen.Folder,
			MetadataSaved: gen.MetadataOK,
			Documents:     docs,
		}
		resp.IsComplete = result.Readiness.Ready && gen.Generated
	}

	return resp
}
