// Package artifact 实现交付物生成与持久化
package artifact

import (
	"aws-architect-api/internal/domain/entity"
)

// proposalGenerator 行政提案：标题 + 模型回复原文
type proposalGenerator struct{}

func (proposalGenerator) Kind() entity.ArtifactKind {
	return entity.ArtifactExecutiveProposal
}

func (g *proposalGenerator) Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact {
	content := "PROPUESTA EJECUTIVA - " + d.PrimaryService + "\n" +
		"Proyecto: " + d.Name + "\n\n" +
		reply + "\n"
	return newArtifact(g.Kind(), d.PrimaryService, content)
}
