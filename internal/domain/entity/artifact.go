// Package entity 定义领域实体
package entity

// ArtifactKind 交付物类型枚举
type ArtifactKind string

const (
	ArtifactExecutiveProposal ArtifactKind = "executive_proposal"
	ArtifactTechnicalDocument ArtifactKind = "technical_document"
	ArtifactTemplate          ArtifactKind = "template"
	ArtifactActivities        ArtifactKind = "activities"
	ArtifactCosts             ArtifactKind = "costs"
	ArtifactCalculatorGuide   ArtifactKind = "calculator_guide"
	ArtifactArchitecture      ArtifactKind = "architecture"
)

// ArtifactKindsOrdered 持久化时的固定写入顺序
var ArtifactKindsOrdered = []ArtifactKind{
	ArtifactExecutiveProposal,
	ArtifactTechnicalDocument,
	ArtifactTemplate,
	ArtifactActivities,
	ArtifactCosts,
	ArtifactCalculatorGuide,
	ArtifactArchitecture,
}

// Artifact 单个生成的交付物文件
type Artifact struct {
	Kind        ArtifactKind `json:"kind"`
	Filename    string       `json:"filename"`
	ContentType string       `json:"content_type"`
	Data        []byte       `json:"-"`
}

// ArtifactSet 一次生成运行产出的交付物集合
type ArtifactSet map[ArtifactKind]Artifact

// ArtifactIndexEntry 元数据行中记录的单个交付物条目
// Error 非空表示该条目写入失败
type ArtifactIndexEntry struct {
	Kind      ArtifactKind `json:"kind"`
	ObjectKey string       `json:"object_key"`
	SizeBytes int64        `json:"size_bytes"`
	Error     string       `json:"error,omitempty"`
}

// ArtifactIndex 一次持久化运行的结果索引
type ArtifactIndex []ArtifactIndexEntry

// Succeeded 返回成功写入的条目数
func (idx ArtifactIndex) Succeeded() int {
	n := 0
	for _, e := range idx {
		if e.Error == "" {
			n++
		}
	}
	return n
}
