// Package artifact 实现交付物生成与持久化
package artifact

import (
	"regexp"
	"strings"

	"aws-architect-api/internal/domain/entity"
)

// dollarAmountPattern 提取行内的美元金额
var dollarAmountPattern = regexp.MustCompile(`\$\s*[\d][\d,.]*`)

// costsGenerator 成本估算 CSV：提取带金额或成本线索的行，
// 缺失时产出固定三行估算
type costsGenerator struct{}

func (costsGenerator) Kind() entity.ArtifactKind {
	return entity.ArtifactCosts
}

func (g *costsGenerator) Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact {
	svc := d.PrimaryService
	cues := []string{"$", "cost", "costo", "precio", "tarifa", "mensual", "monthly", "pricing"}

	rows := [][]string{{"Concepto", "CostoMensual"}}

	matched := linesContainingAny(reply, cues)
	if len(matched) > maxActivityRows {
		matched = matched[:maxActivityRows]
	}

	if len(matched) > 0 {
		for _, line := range matched {
			amount := "-"
			if m := dollarAmountPattern.FindString(line); m != "" {
				amount = strings.ReplaceAll(m, " ", "")
				amount = strings.ReplaceAll(amount, ",", "")
			}
			concept := sanitizeCSVField(dollarAmountPattern.ReplaceAllString(line, ""))
			if concept == "" {
				concept = "Concepto sin descripcion"
			}
			rows = append(rows, []string{concept, amount})
		}
	} else {
		rows = append(rows,
			[]string{svc + " (servicio base)", "$100/mes"},
			[]string{"Servicios de soporte para " + svc, "$50/mes"},
			[]string{"Total estimado (" + svc + ")", "$150/mes"},
		)
	}

	content := joinCSV(rows)
	if !containsFold(content, svc) {
		content += "Servicio principal " + svc + ",-\n"
	}
	return newArtifact(g.Kind(), svc, content)
}
