package interview

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aws-architect-api/internal/application/artifact"
	"aws-architect-api/internal/domain/entity"
	wfmodel "aws-architect-api/internal/workflow/model"
	apperrors "aws-architect-api/pkg/errors"
)

type stubGenerator func(ctx context.Context, in *wfmodel.InterviewGenerateInput) (*schema.Message, error)

func (f stubGenerator) Invoke(ctx context.Context, in *wfmodel.InterviewGenerateInput) (*schema.Message, error) {
	return f(ctx, in)
}

func fixedReply(content string) stubGenerator {
	return func(_ context.Context, _ *wfmodel.InterviewGenerateInput) (*schema.Message, error) {
		return schema.AssistantMessage(content, nil), nil
	}
}

type pipelineStore struct {
	puts map[string][]byte
	err  error
}

func (s *pipelineStore) Put(_ context.Context, key string, _ string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.puts == nil {
		s.puts = make(map[string][]byte)
	}
	s.puts[key] = append([]byte(nil), data...)
	return nil
}

func (s *pipelineStore) PresignedGetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://example.test/" + key, nil
}

type pipelineRepo struct {
	last *entity.ProjectRecord
}

func (r *pipelineRepo) Upsert(_ context.Context, record *entity.ProjectRecord) error {
	copied := *record
	r.last = &copied
	return nil
}

func (r *pipelineRepo) GetByID(_ context.Context, _ string) (*entity.ProjectRecord, error) {
	return r.last, nil
}

func (r *pipelineRepo) ListByUser(_ context.Context, _ string) ([]*entity.ProjectRecord, error) {
	return nil, nil
}

func readyMessages() []entity.Turn {
	return []entity.Turn{
		userTurn("Proyecto InventorySystem"),
		assistantTurn("Que necesitas exactamente?"),
		userTurn("Necesito una instancia EC2"),
		assistantTurn("Que capacidad requieres?"),
		userTurn("Una t3.large con 100 gb en la region us-east-1"),
		assistantTurn("Como sera el acceso?"),
		userTurn("Dentro de una VPC con subred privada y acceso ssh"),
	}
}

func appCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestRunRejectsEmptyMessages(t *testing.T) {
	p := NewPipeline(fixedReply("hola"), nil, nil, nil)

	_, err := p.Run(context.Background(), &Request{})

	assert.Equal(t, apperrors.CodeInvalidParam, appCode(t, err))
}

func TestRunRejectsTrailingAssistantTurn(t *testing.T) {
	p := NewPipeline(fixedReply("hola"), nil, nil, nil)

	_, err := p.Run(context.Background(), &Request{Messages: []entity.Turn{
		userTurn("hola"),
		assistantTurn("hola, cuentame"),
	}})

	assert.Equal(t, apperrors.CodeInvalidParam, appCode(t, err))
}

func TestRunRejectsBlankUserTurn(t *testing.T) {
	p := NewPipeline(fixedReply("hola"), nil, nil, nil)

	_, err := p.Run(context.Background(), &Request{Messages: []entity.Turn{
		userTurn("   "),
	}})

	assert.Equal(t, apperrors.CodeInvalidParam, appCode(t, err))
}

func TestRunClassifiesTransportFailureAsUnavailable(t *testing.T) {
	p := NewPipeline(stubGenerator(func(_ context.Context, _ *wfmodel.InterviewGenerateInput) (*schema.Message, error) {
		return nil, errors.New("dial tcp: connection refused")
	}), nil, nil, nil)

	_, err := p.Run(context.Background(), &Request{Messages: []entity.Turn{userTurn("hola")}})

	assert.Equal(t, apperrors.CodeModelUnavailable, appCode(t, err))
}

func TestRunRejectsBlankCompletion(t *testing.T) {
	p := NewPipeline(fixedReply("   \n"), nil, nil, nil)

	_, err := p.Run(context.Background(), &Request{Messages: []entity.Turn{userTurn("hola")}})

	assert.Equal(t, apperrors.CodeEmptyCompletion, appCode(t, err))
}

func TestRunNotReadySkipsGeneration(t *testing.T) {
	store := &pipelineStore{}
	repo := &pipelineRepo{}
	p := NewPipeline(fixedReply("Cuentame mas sobre tu proyecto"),
		artifact.NewRegistry(nil), artifact.NewSink(store, repo), nil)

	result, err := p.Run(context.Background(), &Request{Messages: []entity.Turn{
		userTurn("hello"),
	}})

	require.NoError(t, err)
	assert.Equal(t, "Cuentame mas sobre tu proyecto", result.Reply)
	assert.NotNil(t, result.Descriptor)
	assert.False(t, result.Readiness.Ready)
	assert.Nil(t, result.Generation)
	assert.Empty(t, store.puts)
	assert.Nil(t, repo.last)
}

func TestRunReadyConversationGeneratesArtifacts(t *testing.T) {
	store := &pipelineStore{}
	repo := &pipelineRepo{}
	p := NewPipeline(fixedReply("Propuesta completa para tu instancia EC2"),
		artifact.NewRegistry(nil), artifact.NewSink(store, repo), nil)

	result, err := p.Run(context.Background(), &Request{
		Messages:  readyMessages(),
		ProjectID: "proj-9",
		UserID:    "user-7",
	})

	require.NoError(t, err)
	assert.True(t, result.Readiness.Ready)
	require.NotNil(t, result.Generation)
	assert.True(t, result.Generation.Generated)
	assert.True(t, result.Generation.MetadataOK)
	assert.Equal(t, "projects/user-7/proj-9/", result.Generation.Folder)
	assert.Len(t, result.Generation.Index, len(entity.ArtifactKindsOrdered))
	assert.Len(t, store.puts, len(entity.ArtifactKindsOrdered))

	require.NotNil(t, repo.last)
	assert.Equal(t, "proj-9", repo.last.ProjectID)
	assert.Equal(t, "user-7", repo.last.UserID)
	assert.Equal(t, entity.ProjectStatusCompleted, repo.last.Status)
}

func TestRunGeneratesProjectIDWhenMissing(t *testing.T) {
	p := NewPipeline(fixedReply("Entendido"), nil, nil, nil)

	result, err := p.Run(context.Background(), &Request{Messages: []entity.Turn{
		userTurn("Necesito una instancia ec2"),
	}})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(result.Descriptor.ProjectID)
	assert.NoError(t, parseErr)
}

func TestRunKeepsProvidedIdentifiers(t *testing.T) {
	p := NewPipeline(fixedReply("Entendido"), nil, nil, nil)

	result, err := p.Run(context.Background(), &Request{
		Messages:  []entity.Turn{userTurn("Necesito una instancia ec2")},
		ProjectID: " proj-42 ",
		UserID:    "user-42",
	})

	require.NoError(t, err)
	assert.Equal(t, "proj-42", result.Descriptor.ProjectID)
	assert.Equal(t, "user-42", result.Descriptor.UserID)
}

func TestRunForwardsTranscriptAndModelToChain(t *testing.T) {
	var captured *wfmodel.InterviewGenerateInput
	p := NewPipeline(stubGenerator(func(_ context.Context, in *wfmodel.InterviewGenerateInput) (*schema.Message, error) {
		captured = in
		return schema.AssistantMessage("ok", nil), nil
	}), nil, nil, nil)

	_, err := p.Run(context.Background(), &Request{
		Messages: []entity.Turn{
			userTurn("hola"),
			assistantTurn("hola, cuentame"),
			userTurn("necesito ec2"),
		},
		ModelID: "anthropic.claude-3-5-sonnet-20240620-v1:0",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	require.Len(t, captured.Turns, 3)
	assert.Equal(t, string(entity.RoleUser), captured.Turns[0].Role)
	assert.Equal(t, "necesito ec2", captured.Turns[2].Content)
	assert.Equal(t, "anthropic.claude-3-5-sonnet-20240620-v1:0", captured.Model)
}

func TestRunGenerationSurvivesStorageOutage(t *testing.T) {
	store := &pipelineStore{err: errors.New("storage down")}
	repo := &pipelineRepo{}
	p := NewPipeline(fixedReply("Propuesta completa para tu instancia EC2"),
		artifact.NewRegistry(nil), artifact.NewSink(store, repo), nil)

	result, err := p.Run(context.Background(), &Request{
		Messages: readyMessages(),
		UserID:   "user-7",
	})

	// 存储故障不致命：回复照常返回，生成结果标记为未写入
	require.NoError(t, err)
	require.NotNil(t, result.Generation)
	assert.False(t, result.Generation.Generated)
	require.NotNil(t, repo.last)
	assert.Equal(t, entity.ProjectStatusInProgress, repo.last.Status)
	assert.True(t, strings.HasPrefix(result.Generation.Folder, "projects/user-7/"))
}
