// Package artifact 实现交付物生成与持久化
package artifact

import (
	"strings"

	"aws-architect-api/internal/domain/entity"
)

// technicalGenerator 技术文档：从回复中筛选技术相关行，无命中时用固定骨架
type technicalGenerator struct{}

func (technicalGenerator) Kind() entity.ArtifactKind {
	return entity.ArtifactTechnicalDocument
}

func (g *technicalGenerator) Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact {
	svc := d.PrimaryService
	cues := []string{
		"architecture", "arquitectura",
		"technical", "tecnic",
		"configuration", "configuraci",
		"implementation", "implementaci",
		strings.ToLower(svc),
	}

	lines := linesContainingAny(reply, cues)
	if len(lines) == 0 {
		lines = []string{
			"1. Componente central: " + svc + " como servicio principal de la solucion.",
			"2. Integracion: conexion de " + svc + " con los servicios de soporte de la cuenta.",
			"3. Seguridad: politicas IAM de privilegio minimo, cifrado en transito y en reposo.",
			"4. Monitoreo: metricas, logs y alarmas de CloudWatch sobre " + svc + ".",
		}
	}

	body := strings.Join(lines, "\n")
	if !containsFold(body, svc) {
		body += "\nServicio principal de referencia: " + svc + "."
	}

	content := "DOCUMENTO TECNICO - " + svc + "\n\n" + body + "\n"
	return newArtifact(g.Kind(), svc, content)
}
