// Package artifact 实现交付物生成与持久化
package artifact

import (
	"fmt"
	"strings"

	"aws-architect-api/internal/domain/entity"
)

// maxActivityRows 从回复中提取的活动行上限
const maxActivityRows = 10

// activitiesGenerator 活动计划 CSV：从回复提取活动线索行，缺失时产出
// 五行确定性计划
type activitiesGenerator struct{}

func (activitiesGenerator) Kind() entity.ArtifactKind {
	return entity.ArtifactActivities
}

func (g *activitiesGenerator) Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact {
	svc := d.PrimaryService
	cues := []string{"phase", "fase", "step", "paso", "activity", "actividad", "implement", "implementa", "configure", "configura"}

	rows := [][]string{{"Fase", "Actividad", "DuracionDias"}}

	matched := linesContainingAny(reply, cues)
	if len(matched) > maxActivityRows {
		matched = matched[:maxActivityRows]
	}

	if len(matched) > 0 {
		for i, line := range matched {
			duration := 2 + i%2
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				sanitizeCSVField(line),
				fmt.Sprintf("%d", duration),
			})
		}
	} else {
		rows = append(rows,
			[]string{"1", "Aprovisionamiento y configuracion base de " + svc, "3"},
			[]string{"2", "Integracion de " + svc + " con servicios de soporte", "2"},
			[]string{"3", "Configuracion de seguridad y accesos para " + svc, "2"},
			[]string{"4", "Pruebas funcionales y de carga", "2"},
			[]string{"5", "Despliegue a produccion y entrega", "3"},
		)
	}

	content := joinCSV(rows)
	if !containsFold(content, svc) {
		content += fmt.Sprintf("%d,Revision final de la solucion %s,1\n", len(rows), svc)
	}
	return newArtifact(g.Kind(), svc, content)
}

// joinCSV 手工拼接 CSV：字段已净化，永远无需引号
func joinCSV(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}
