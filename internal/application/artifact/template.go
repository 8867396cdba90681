// Package artifact 实现交付物生成与持久化
package artifact

import (
	"strings"

	"aws-architect-api/internal/domain/entity"
)

// templateGenerator 基础设施模板：提取回复中的 CloudFormation 块，
// 缺失时产出最小可用模板
type templateGenerator struct{}

func (templateGenerator) Kind() entity.ArtifactKind {
	return entity.ArtifactTemplate
}

func (g *templateGenerator) Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact {
	svc := d.PrimaryService

	block := extractTemplateBlock(reply)
	if block == "" {
		block = fallbackTemplate(svc)
	}

	content := "# Plantilla CloudFormation para " + svc + "\n" + block
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return newArtifact(g.Kind(), svc, content)
}

// extractTemplateBlock 取第一个以模板标记行开头的连续块
// 在代码围栏结束或连续两个空行处截断
func extractTemplateBlock(reply string) string {
	lines := strings.Split(reply, "\n")
	start := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, "AWSTemplateFormatVersion") || strings.HasPrefix(trimmed, "Resources:") {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	var out []string
	blankRun := 0
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			break
		}
		if trimmed == "" {
			blankRun++
			if blankRun >= 2 {
				break
			}
		} else {
			blankRun = 0
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// fallbackTemplate 最小确定性模板：描述、环境参数、空资源与一个输出
func fallbackTemplate(svc string) string {
	slug := ServiceSlug(svc)
	return `AWSTemplateFormatVersion: "2010-09-09"
Description: Plantilla base para la solucion ` + svc + `
Parameters:
  Environment:
    Type: String
    Default: dev
    AllowedValues:
      - dev
      - qa
      - prod
Resources: {}
Outputs:
  StackName:
    Description: Identificador del stack de ` + svc + `
    Value: !Sub "` + slug + `-${Environment}"`
}
