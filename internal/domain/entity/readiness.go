// Package entity 定义领域实体
package entity

// ReadinessThreshold 触发交付物生成的最低评分
const ReadinessThreshold = 0.8

// ReadinessVerdict 访谈就绪度评估结果
// 四项独立指标各贡献 0.25 分
type ReadinessVerdict struct {
	HasProjectName    bool    `json:"project_name"`
	HasProjectKind    bool    `json:"project_kind"`
	HasTechnicalTerms bool    `json:"technical_details"`
	HasEnoughTurns    bool    `json:"sufficient_context"`
	Score             float64 `json:"score"`
	Ready             bool    `json:"ready"`
}
