// Package entity 定义领域实体
package entity

// ProjectKind 项目类型枚举
type ProjectKind string

const (
	ProjectKindQuickService     ProjectKind = "quick_service"
	ProjectKindIntegralSolution ProjectKind = "integral_solution"
	ProjectKindUnknown          ProjectKind = "unknown"
)

// ProjectDescriptor 从对话中提炼的项目描述符
// 仅在单个请求生命周期内存在
type ProjectDescriptor struct {
	ProjectID         string      `json:"project_id"`
	UserID            string      `json:"user_id"`
	Name              string      `json:"name"`
	Kind              ProjectKind `json:"kind"`
	PrimaryService    string      `json:"primary_service"`
	Description       string      `json:"description"`
	Objective         string      `json:"objective"`
	MentionedServices []string    `json:"mentioned_services"`
}

// DefaultUserID 未提供调用方标识时使用的占位用户
const DefaultUserID = "anonymous"

// DefaultPrimaryService 语料中未命中任何服务词条时的兜底值
const DefaultPrimaryService = "AWS"

// DefaultProjectName 无法推断项目名时的兜底值
const DefaultProjectName = "AWS Project"
