// Package interview 实现访谈语料的上下文提取与就绪度评估
package interview

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"aws-architect-api/internal/application/artifact"
	"aws-architect-api/internal/config"
	"aws-architect-api/internal/domain/entity"
	wfmodel "aws-architect-api/internal/workflow/model"
	wfnode "aws-architect-api/internal/workflow/node"
	apperrors "aws-architect-api/pkg/errors"
	"aws-architect-api/pkg/logger"
	"aws-architect-api/pkg/metrics"
)

// defaultLLMTimeout 未配置时的模型调用超时
const defaultLLMTimeout = 30 * time.Second

// ReplyGenerator 访谈回复生成链的最小依赖
type ReplyGenerator interface {
	Invoke(ctx context.Context, in *wfmodel.InterviewGenerateInput) (*schema.Message, error)
}

// Request 单轮访谈请求
type Request struct {
	Messages  []entity.Turn
	ModelID   string
	ProjectID string
	UserID    string
}

// GenerationResult 就绪后交付物生成与持久化的结果
type GenerationResult struct {
	Generated  bool
	Folder     string
	Index      entity.ArtifactIndex
	MetadataOK bool
}

// Result 单轮访谈处理结果
type Result struct {
	Reply      string
	Descriptor *entity.ProjectDescriptor
	Readiness  entity.ReadinessVerdict
	Generation *GenerationResult
}

// Pipeline 访谈处理管道：回复生成 -> 上下文提取 -> 就绪评估 ->
// （就绪时）交付物生成与持久化
// 模型调用失败是唯一的致命错误，生成与持久化环节尽力而为
type Pipeline struct {
	chain     ReplyGenerator
	extractor *Extractor
	evaluator *Evaluator
	registry  *artifact.Registry
	sink      *artifact.Sink
	llmCfg    *config.LLMConfig
}

// NewPipeline 创建访谈管道
func NewPipeline(chain ReplyGenerator, registry *artifact.Registry, sink *artifact.Sink, llmCfg *config.LLMConfig) *Pipeline {
	return &Pipeline{
		chain:     chain,
		extractor: NewExtractor(),
		evaluator: NewEvaluator(),
		registry:  registry,
		sink:      sink,
		llmCfg:    llmCfg,
	}
}

// Run 处理一轮访谈请求
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Result, error) {
	if req == nil || len(req.Messages) == 0 {
		metrics.InterviewTurnsTotal.WithLabelValues("invalid").Inc()
		return nil, apperrors.New(apperrors.CodeInvalidParam, "messages are required")
	}

	transcript := entity.NewTranscript(req.Messages)
	last, ok := transcript.LastUserTurn()
	if !ok || strings.TrimSpace(last.Content) == "" {
		metrics.InterviewTurnsTotal.WithLabelValues("invalid").Inc()
		return nil, apperrors.New(apperrors.CodeInvalidParam, "last message must be a non-empty user turn")
	}
	if lastTurn := req.Messages[len(req.Messages)-1]; lastTurn.Role != entity.RoleUser {
		metrics.InterviewTurnsTotal.WithLabelValues("invalid").Inc()
		return nil, apperrors.New(apperrors.CodeInvalidParam, "last message must be a user turn")
	}

	reply, err := p.generateReply(ctx, transcript, req.ModelID)
	if err != nil {
		metrics.InterviewTurnsTotal.WithLabelValues("llm_error").Inc()
		return nil, err
	}

	descriptor := p.extractor.Extract(transcript, reply)
	descriptor.ProjectID = strings.TrimSpace(req.ProjectID)
	if descriptor.ProjectID == "" {
		descriptor.ProjectID = uuid.New().String()
	}
	if userID := strings.TrimSpace(req.UserID); userID != "" {
		descriptor.UserID = userID
	}

	verdict := p.evaluator.Evaluate(transcript)
	metrics.ReadinessGateTotal.WithLabelValues(boolLabel(verdict.Ready)).Inc()

	result := &Result{
		Reply:      reply,
		Descriptor: descriptor,
		Readiness:  verdict,
	}

	if verdict.Ready && p.registry != nil && p.sink != nil {
		set := p.registry.GenerateAll(ctx, descriptor, reply)
		index, metadataOK := p.sink.Persist(ctx, descriptor, set)
		result.Generation = &GenerationResult{
			Generated:  index.Succeeded() > 0,
			Folder:     artifact.StoragePrefix(descriptor.UserID, descriptor.ProjectID),
			Index:      index,
			MetadataOK: metadataOK,
		}
		logger.Info(ctx, "artifact generation completed",
			"projectId", descriptor.ProjectID,
			"succeeded", index.Succeeded(),
			"total", len(index),
			"metadataOk", metadataOK,
		)
	}

	metrics.InterviewTurnsTotal.WithLabelValues("success").Inc()
	return result, nil
}

// generateReply 调用生成链并归类模型错误，空回复视为失败
func (p *Pipeline) generateReply(ctx context.Context, transcript *entity.Transcript, modelID string) (string, error) {
	timeout := defaultLLMTimeout
	provider := ""
	if p.llmCfg != nil {
		if p.llmCfg.Timeout > 0 {
			timeout = p.llmCfg.Timeout
		}
		provider = p.llmCfg.DefaultProvider
	}

	llmCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	turns := transcript.Turns()
	in := &wfmodel.InterviewGenerateInput{
		Turns:    make([]wfmodel.InterviewTurn, 0, len(turns)),
		Provider: provider,
		Model:    strings.TrimSpace(modelID),
	}
	for _, turn := range turns {
		in.Turns = append(in.Turns, wfmodel.InterviewTurn{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	start := time.Now()
	msg, err := p.chain.Invoke(llmCtx, in)
	metrics.LLMCallDuration.WithLabelValues(providerLabel(provider)).Observe(time.Since(start).Seconds())

	if err != nil {
		appErr := wfnode.ClassifyLLMError(err)
		logger.Error(ctx, "llm completion failed", appErr, "model", modelID)
		return "", appErr
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		logger.Error(ctx, "llm returned empty completion", nil, "model", modelID)
		return "", apperrors.New(apperrors.CodeEmptyCompletion, "model returned empty completion")
	}
	return msg.Content, nil
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func providerLabel(provider string) string {
	if strings.TrimSpace(provider) == "" {
		return "default"
	}
	return provider
}
