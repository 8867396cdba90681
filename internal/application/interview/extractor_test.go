package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-architect-api/internal/domain/entity"
)

func userTurn(content string) entity.Turn {
	return entity.Turn{Role: entity.RoleUser, Content: content}
}

func assistantTurn(content string) entity.Turn {
	return entity.Turn{Role: entity.RoleAssistant, Content: content}
}

func TestExtractGreetingOnlyFallsBackToDefaults(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{userTurn("hello")})

	d := e.Extract(transcript, "Hola, cuentame sobre tu proyecto")

	assert.Equal(t, entity.DefaultProjectName, d.Name)
	assert.Equal(t, entity.DefaultPrimaryService, d.PrimaryService)
	assert.Equal(t, entity.ProjectKindUnknown, d.Kind)
	assert.Empty(t, d.MentionedServices)
}

func TestExtractShortFirstTurnBecomesProjectName(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("InventorySystem"),
		assistantTurn("Cuentame mas sobre InventorySystem"),
		userTurn("Necesito controlar inventario en tiempo real"),
	})

	d := e.Extract(transcript, "Entendido")

	assert.Equal(t, "InventorySystem", d.Name)
}

func TestExtractNameSkipsGreetingsAndLongTurns(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Hola!"),
		userTurn("este turno tiene demasiadas palabras como para ser un nombre"),
		userTurn("Plataforma Logistica"),
	})

	d := e.Extract(transcript, "")

	assert.Equal(t, "Plataforma Logistica", d.Name)
}

func TestExtractPrimaryServiceByHighestCount(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Necesito una instancia EC2 dentro de una VPC"),
		userTurn("Una t3.large estaria bien"),
	})

	d := e.Extract(transcript, "")

	// EC2 命中两次 (ec2 + t3.)，VPC 仅一次
	assert.Equal(t, "EC2", d.PrimaryService)
	assert.Contains(t, d.MentionedServices, "EC2")
	assert.Contains(t, d.MentionedServices, "VPC")
}

func TestExtractTieBreakFollowsLexiconOrder(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Evaluando lambda y ec2 por igual"),
	})

	d := e.Extract(transcript, "")

	assert.Equal(t, "LAMBDA", d.PrimaryService)
}

func TestExtractNoFalsePositiveOnEmbeddedTriggers(t *testing.T) {
	e := NewExtractor()
	// "processes" contiene "ses" pero no debe activar el servicio SES
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("We have long running processes to automate"),
	})

	d := e.Extract(transcript, "")

	assert.NotContains(t, d.MentionedServices, "SES")
}

func TestExtractKindIntegralWinsOverQuick(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Es una migracion que incluye una instancia ec2"),
	})

	d := e.Extract(transcript, "")

	assert.Equal(t, entity.ProjectKindIntegralSolution, d.Kind)
}

func TestExtractKindQuickService(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Solo quiero una instancia ec2"),
	})

	d := e.Extract(transcript, "")

	assert.Equal(t, entity.ProjectKindQuickService, d.Kind)
}

func TestExtractDescriptionTakesFirstNeedSentence(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Buenas tardes"),
		userTurn("Necesito un inventario en linea. Debe responder en milisegundos."),
	})

	d := e.Extract(transcript, "")

	assert.Equal(t, "Necesito un inventario en linea", d.Description)
}

func TestExtractDescriptionFallbackNamesPrimaryService(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("ec2 t3.micro us-east-1"),
	})

	d := e.Extract(transcript, "")

	assert.Equal(t, "Implementation of EC2-based enterprise solution.", d.Description)
}

func TestExtractObjectiveFallbackTable(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("ec2 t3.micro"),
	})

	d := e.Extract(transcript, "")

	assert.Equal(t, defaultObjectives["EC2"], d.Objective)
}

func TestExtractObjectiveFinalFallback(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("cognito"),
	})

	d := e.Extract(transcript, "")

	// COGNITO 不在兜底表中
	assert.Equal(t, defaultObjectiveFallback, d.Objective)
}

func TestExtractFieldsRespectRuneLimit(t *testing.T) {
	e := NewExtractor()
	long := "Necesito "
	for i := 0; i < 60; i++ {
		long += "inventario "
	}
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn(long),
	})

	d := e.Extract(transcript, "")

	assert.LessOrEqual(t, len([]rune(d.Description)), maxFieldRunes)
}

func TestExtractIsDeterministic(t *testing.T) {
	e := NewExtractor()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("InventorySystem"),
		userTurn("Necesito una instancia ec2 con 100 gb"),
	})

	first := e.Extract(transcript, "reply")
	second := e.Extract(transcript, "reply")

	require.Equal(t, first, second)
}

func TestTruncateByRunesKeepsMultibyteIntact(t *testing.T) {
	s := "日本語テキスト"
	out := truncateByRunes(s, 3)
	assert.Equal(t, "日本語", out)

	assert.Equal(t, "abc", truncateByRunes("abc", 10))
	assert.Equal(t, "", truncateByRunes("abc", 0))
}
