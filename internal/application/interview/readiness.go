// Package interview 实现访谈语料的上下文提取与就绪度评估
package interview

import (
	"strings"

	"aws-architect-api/internal/domain/entity"
)

// minTechnicalTerms I3 所需的最少不同技术词条命中数
const minTechnicalTerms = 3

// minUserTurns I4 所需的最少用户轮次数
const minUserTurns = 4

// indicatorWeight 单项指标的贡献分
const indicatorWeight = 0.25

// Evaluator 就绪度评估器
// 只评估对话记录本身，从不读取当次模型回复，保证对模型复读免疫
type Evaluator struct{}

// NewEvaluator 创建评估器
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate 用四项独立指标为对话打分，score >= 阈值时放行生成
func (e *Evaluator) Evaluate(transcript *entity.Transcript) entity.ReadinessVerdict {
	corpus := strings.ToLower(transcript.JoinedText())

	verdict := entity.ReadinessVerdict{
		HasProjectName:    hasProjectLabel(corpus),
		HasProjectKind:    hasKindTerm(corpus),
		HasTechnicalTerms: countTechnicalTerms(corpus) >= minTechnicalTerms,
		HasEnoughTurns:    len(transcript.UserTurns()) >= minUserTurns,
	}

	if verdict.HasProjectName {
		verdict.Score += indicatorWeight
	}
	if verdict.HasProjectKind {
		verdict.Score += indicatorWeight
	}
	if verdict.HasTechnicalTerms {
		verdict.Score += indicatorWeight
	}
	if verdict.HasEnoughTurns {
		verdict.Score += indicatorWeight
	}
	verdict.Ready = verdict.Score >= entity.ReadinessThreshold

	return verdict
}

// hasProjectLabel I1：语料包含项目标签词
// 子串匹配，兼容 "InventorySystem" 这类驼峰拼接的项目名
func hasProjectLabel(corpus string) bool {
	for _, term := range projectLabelTerms {
		if strings.Contains(corpus, term) {
			return true
		}
	}
	return false
}

// hasKindTerm I2：语料包含任一项目类型词条（整体 ∪ 快速）
func hasKindTerm(corpus string) bool {
	for _, p := range integralTerms {
		if p.MatchString(corpus) {
			return true
		}
	}
	for _, p := range quickTerms {
		if p.MatchString(corpus) {
			return true
		}
	}
	return false
}

// countTechnicalTerms I3：统计不同技术词条的命中数
func countTechnicalTerms(corpus string) int {
	n := 0
	for _, p := range technicalTerms {
		if p.MatchString(corpus) {
			n++
		}
	}
	return n
}
