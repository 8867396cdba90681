// Package artifact 实现交付物生成与持久化
package artifact

import (
	"strings"

	"aws-architect-api/internal/domain/entity"
)

// calculatorGenerator 定价计算器指南：提取回复中的定价步骤行，
// 缺失时产出六步固定指南
type calculatorGenerator struct{}

func (calculatorGenerator) Kind() entity.ArtifactKind {
	return entity.ArtifactCalculatorGuide
}

func (g *calculatorGenerator) Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact {
	svc := d.PrimaryService
	cues := []string{"calculator", "calculadora", "pricing", "precio", "step", "paso", "estimate", "estimacion", "estimaci"}

	lines := linesContainingAny(reply, cues)
	if len(lines) == 0 {
		lines = []string{
			"1. Ingresar a https://calculator.aws en el navegador.",
			"2. Seleccionar Create estimate y buscar el servicio " + svc + ".",
			"3. Configurar region, tipo de instancia o capacidad y almacenamiento segun el proyecto.",
			"4. Agregar los servicios de soporte adicionales a la misma estimacion.",
			"5. Revisar el resumen de costo mensual y anual generado.",
			"6. Exportar o compartir el enlace de la estimacion con el cliente.",
		}
	}

	body := strings.Join(lines, "\n")
	if !containsFold(body, svc) {
		body += "\nServicio a cotizar: " + svc + "."
	}

	content := "GUIA DE CALCULADORA DE PRECIOS AWS - " + svc + "\n\n" + body + "\n"
	return newArtifact(g.Kind(), svc, content)
}
