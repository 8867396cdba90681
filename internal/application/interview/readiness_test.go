package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aws-architect-api/internal/domain/entity"
)

func TestEvaluateGreetingOnlyScoresZero(t *testing.T) {
	e := NewEvaluator()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("hello"),
	})

	v := e.Evaluate(transcript)

	assert.False(t, v.HasProjectName)
	assert.False(t, v.HasProjectKind)
	assert.False(t, v.HasTechnicalTerms)
	assert.False(t, v.HasEnoughTurns)
	assert.Equal(t, 0.0, v.Score)
	assert.False(t, v.Ready)
}

func TestEvaluateFullConversationIsReady(t *testing.T) {
	e := NewEvaluator()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Proyecto InventorySystem"),
		assistantTurn("Que necesitas exactamente?"),
		userTurn("Necesito una instancia EC2"),
		assistantTurn("Que capacidad requieres?"),
		userTurn("Una t3.large con 100 gb en la region us-east-1"),
		assistantTurn("Como sera el acceso?"),
		userTurn("Dentro de una VPC con subred privada y acceso ssh"),
	})

	v := e.Evaluate(transcript)

	assert.True(t, v.HasProjectName)
	assert.True(t, v.HasProjectKind)
	assert.True(t, v.HasTechnicalTerms)
	assert.True(t, v.HasEnoughTurns)
	assert.Equal(t, 1.0, v.Score)
	assert.True(t, v.Ready)
}

func TestEvaluateThreeIndicatorsIsNotReady(t *testing.T) {
	e := NewEvaluator()
	// 三个用户轮次：缺少 I4，得分 0.75 < 0.8
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Proyecto InventorySystem"),
		userTurn("Necesito una instancia EC2"),
		userTurn("Una t3.large con 100 gb en la region us-east-1 dentro de una vpc"),
	})

	v := e.Evaluate(transcript)

	assert.True(t, v.HasProjectName)
	assert.True(t, v.HasProjectKind)
	assert.True(t, v.HasTechnicalTerms)
	assert.False(t, v.HasEnoughTurns)
	assert.InDelta(t, 0.75, v.Score, 1e-9)
	assert.False(t, v.Ready)
}

func TestEvaluateProjectLabelMatchesSubstring(t *testing.T) {
	e := NewEvaluator()
	// 驼峰拼接的项目名也要触发 I1
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("InventorySystem"),
	})

	v := e.Evaluate(transcript)

	assert.True(t, v.HasProjectName)
}

func TestEvaluateTechnicalTermsRequireThreeDistinct(t *testing.T) {
	e := NewEvaluator()
	// 同一词条重复命中只算一次
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("instancia instancia instancia"),
	})

	v := e.Evaluate(transcript)

	assert.False(t, v.HasTechnicalTerms)
}

func TestEvaluateIsMonotonicInTurns(t *testing.T) {
	e := NewEvaluator()
	base := []entity.Turn{
		userTurn("Proyecto InventorySystem"),
		userTurn("Necesito una instancia EC2"),
		userTurn("Una t3.large con 100 gb en la region us-east-1 dentro de una vpc"),
	}

	before := e.Evaluate(entity.NewTranscript(base))
	after := e.Evaluate(entity.NewTranscript(append(base, userTurn("Acceso por ssh con llave propia"))))

	assert.GreaterOrEqual(t, after.Score, before.Score)
	assert.True(t, after.Ready)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	e := NewEvaluator()
	transcript := entity.NewTranscript([]entity.Turn{
		userTurn("Proyecto con una instancia ec2 y 100 gb"),
	})

	assert.Equal(t, e.Evaluate(transcript), e.Evaluate(transcript))
}
