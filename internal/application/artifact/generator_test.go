package artifact

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-architect-api/internal/domain/entity"
)

func testDescriptor() *entity.ProjectDescriptor {
	return &entity.ProjectDescriptor{
		ProjectID:      "p-1",
		UserID:         "u-1",
		Name:           "InventorySystem",
		Kind:           entity.ProjectKindQuickService,
		PrimaryService: "EC2",
	}
}

func TestGenerateAllProducesAllKinds(t *testing.T) {
	r := NewRegistry(nil)
	set := r.GenerateAll(context.Background(), testDescriptor(), "Propuesta para tu instancia EC2")

	require.Len(t, set, len(entity.ArtifactKindsOrdered))
	for _, kind := range entity.ArtifactKindsOrdered {
		a, ok := set[kind]
		require.True(t, ok, string(kind))
		assert.NotEmpty(t, a.Data)
		assert.NotEmpty(t, a.Filename)
		assert.NotEmpty(t, a.ContentType)
	}
}

func TestGenerateAllEveryArtifactNamesPrimaryService(t *testing.T) {
	r := NewRegistry(nil)
	set := r.GenerateAll(context.Background(), testDescriptor(), "respuesta sin servicios mencionados")

	for kind, a := range set {
		assert.True(t, containsFold(string(a.Data), "EC2"), string(kind))
	}
}

func TestGenerateAllOutputIsASCIIOnly(t *testing.T) {
	r := NewRegistry(nil)
	reply := "Diseño de la solución: configuración de región «us-east-1» — ¿está bien? ñandú €"
	set := r.GenerateAll(context.Background(), testDescriptor(), reply)

	for kind, a := range set {
		for i := 0; i < len(a.Data); i++ {
			if a.Data[i] >= 128 {
				t.Fatalf("artifact %s contains non-ascii byte %x", kind, a.Data[i])
			}
		}
	}
}

func TestGenerateAllIsDeterministic(t *testing.T) {
	r := NewRegistry(nil)
	d := testDescriptor()
	reply := "Propuesta tecnica para EC2 con fases de implementacion"

	first := r.GenerateAll(context.Background(), d, reply)
	second := r.GenerateAll(context.Background(), d, reply)

	require.Equal(t, len(first), len(second))
	for kind, a := range first {
		assert.Equal(t, a.Data, second[kind].Data, string(kind))
	}
}

func TestFilenamesFollowNamingScheme(t *testing.T) {
	assert.Equal(t, "propuesta-ejecutiva-ec2.txt", FilenameFor(entity.ArtifactExecutiveProposal, "EC2"))
	assert.Equal(t, "documento-tecnico-api-gateway.txt", FilenameFor(entity.ArtifactTechnicalDocument, "API GATEWAY"))
	assert.Equal(t, "cloudformation-s3.yaml", FilenameFor(entity.ArtifactTemplate, "S3"))
	assert.Equal(t, "actividades-rds.csv", FilenameFor(entity.ArtifactActivities, "RDS"))
	assert.Equal(t, "costos-lambda.csv", FilenameFor(entity.ArtifactCosts, "LAMBDA"))
	assert.Equal(t, "guia-calculadora-vpc.txt", FilenameFor(entity.ArtifactCalculatorGuide, "VPC"))
	assert.Equal(t, "arquitectura-ecs.txt", FilenameFor(entity.ArtifactArchitecture, "ECS"))
}

func TestProposalContainsReplyVerbatim(t *testing.T) {
	g := &proposalGenerator{}
	a := g.Generate(testDescriptor(), "Esta es la propuesta completa del proyecto")

	content := string(a.Data)
	assert.Contains(t, content, "PROPUESTA EJECUTIVA - EC2")
	assert.Contains(t, content, "Proyecto: InventorySystem")
	assert.Contains(t, content, "Esta es la propuesta completa del proyecto")
}

func TestTemplateExtractsCloudFormationBlock(t *testing.T) {
	g := &templateGenerator{}
	reply := "Aqui tienes la plantilla:\n" +
		"AWSTemplateFormatVersion: \"2010-09-09\"\n" +
		"Resources:\n" +
		"  MyInstance:\n" +
		"    Type: AWS::EC2::Instance\n" +
		"```\n" +
		"texto posterior"

	a := g.Generate(testDescriptor(), reply)

	content := string(a.Data)
	assert.Contains(t, content, "AWSTemplateFormatVersion")
	assert.Contains(t, content, "AWS::EC2::Instance")
	assert.NotContains(t, content, "texto posterior")
}

func TestTemplateFallbackIsValidSkeleton(t *testing.T) {
	g := &templateGenerator{}
	a := g.Generate(testDescriptor(), "respuesta sin plantilla alguna")

	content := string(a.Data)
	assert.Contains(t, content, "AWSTemplateFormatVersion")
	assert.Contains(t, content, "Resources: {}")
	assert.Contains(t, content, "ec2-${Environment}")
}

func TestActivitiesFallbackHasFivePhases(t *testing.T) {
	g := &activitiesGenerator{}
	a := g.Generate(testDescriptor(), "sin lineas de actividad")

	lines := strings.Split(strings.TrimRight(string(a.Data), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Fase,Actividad,DuracionDias", lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, 2, strings.Count(line, ","), line)
	}
}

func TestActivitiesParsesCuedLinesWithCap(t *testing.T) {
	g := &activitiesGenerator{}
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("Fase de configuracion, con detalles\n")
	}

	a := g.Generate(testDescriptor(), sb.String())

	lines := strings.Split(strings.TrimRight(string(a.Data), "\n"), "\n")
	// 标题 + 上限 10 行 + 服务兜底行
	assert.LessOrEqual(t, len(lines), 12)
	for _, line := range lines {
		assert.Equal(t, 2, strings.Count(line, ","), line)
	}
}

func TestCostsExtractsDollarAmounts(t *testing.T) {
	g := &costsGenerator{}
	a := g.Generate(testDescriptor(), "El costo mensual de EC2 sera $120.50 aproximadamente")

	content := string(a.Data)
	assert.Contains(t, content, "Concepto,CostoMensual")
	assert.Contains(t, content, "$120.50")
}

func TestCostsFallbackTable(t *testing.T) {
	g := &costsGenerator{}
	a := g.Generate(testDescriptor(), "respuesta sin cifras")

	content := string(a.Data)
	assert.Contains(t, content, "EC2 (servicio base),$100/mes")
	assert.Contains(t, content, "Total estimado (EC2),$150/mes")
}

func TestCalculatorGuideFallbackSteps(t *testing.T) {
	g := &calculatorGenerator{}
	a := g.Generate(testDescriptor(), "nada relevante aqui")

	content := string(a.Data)
	assert.Contains(t, content, "calculator.aws")
	assert.Contains(t, content, "EC2")
}

func TestArchitectureFallbackDescribesCore(t *testing.T) {
	g := &architectureGenerator{}
	a := g.Generate(testDescriptor(), "nada relevante aqui")

	content := string(a.Data)
	assert.Contains(t, content, "ARQUITECTURA - EC2")
	assert.Contains(t, content, "Componente central")
}

func TestServiceSlug(t *testing.T) {
	assert.Equal(t, "ec2", ServiceSlug("EC2"))
	assert.Equal(t, "api-gateway", ServiceSlug("API GATEWAY"))
}
