// Package artifact 实现交付物生成与持久化
package artifact

import (
	"strings"

	"aws-architect-api/internal/domain/entity"
)

// architectureGenerator 架构描述：提取架构相关行，缺失时给出
// 以主服务为中心的文字架构
type architectureGenerator struct{}

func (architectureGenerator) Kind() entity.ArtifactKind {
	return entity.ArtifactArchitecture
}

func (g *architectureGenerator) Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact {
	svc := d.PrimaryService
	cues := []string{"diagram", "diagrama", "architecture", "arquitectura", "component", "componente", "flow", "flujo"}

	lines := linesContainingAny(reply, cues)
	if len(lines) == 0 {
		lines = []string{
			"Componente central: " + svc + " como nucleo de la solucion.",
			"Flujo de datos: los usuarios acceden a traves de los puntos de entrada definidos hacia " + svc + ".",
			"Servicios de soporte: CloudWatch para monitoreo, IAM para control de acceso y respaldos automaticos.",
		}
	}

	body := strings.Join(lines, "\n")
	if !containsFold(body, svc) {
		body += "\nServicio principal: " + svc + "."
	}

	content := "ARQUITECTURA - " + svc + "\n\n" + body + "\n"
	return newArtifact(g.Kind(), svc, content)
}
