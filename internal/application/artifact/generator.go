// Package artifact 实现交付物生成与持久化
package artifact

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"aws-architect-api/internal/domain/entity"
	"aws-architect-api/pkg/logger"
	"aws-architect-api/pkg/metrics"
)

// Generator 单一交付物生成器
// 纯函数：相同 (描述符, 回复) 必然产出相同内容，绝不失败
type Generator interface {
	Kind() entity.ArtifactKind
	Generate(d *entity.ProjectDescriptor, reply string) entity.Artifact
}

// artifactNaming 各类型交付物的文件命名与内容类型
var artifactNaming = map[entity.ArtifactKind]struct {
	Base        string
	Ext         string
	ContentType string
}{
	entity.ArtifactExecutiveProposal: {"propuesta-ejecutiva", ".txt", "text/plain; charset=utf-8"},
	entity.ArtifactTechnicalDocument: {"documento-tecnico", ".txt", "text/plain; charset=utf-8"},
	entity.ArtifactTemplate:          {"cloudformation", ".yaml", "application/x-yaml"},
	entity.ArtifactActivities:        {"actividades", ".csv", "text/csv"},
	entity.ArtifactCosts:             {"costos", ".csv", "text/csv"},
	entity.ArtifactCalculatorGuide:   {"guia-calculadora", ".txt", "text/plain; charset=utf-8"},
	entity.ArtifactArchitecture:      {"arquitectura", ".txt", "text/plain; charset=utf-8"},
}

// ServiceSlug 服务名转文件名片段：小写、空格换短横线
func ServiceSlug(service string) string {
	return strings.ReplaceAll(strings.ToLower(service), " ", "-")
}

// FilenameFor 按类型与主服务生成稳定文件名
func FilenameFor(kind entity.ArtifactKind, service string) string {
	naming := artifactNaming[kind]
	return naming.Base + "-" + ServiceSlug(service) + naming.Ext
}

// newArtifact 组装单个交付物，文件名与内容类型由类型表决定
func newArtifact(kind entity.ArtifactKind, service, content string) entity.Artifact {
	naming := artifactNaming[kind]
	return entity.Artifact{
		Kind:        kind,
		Filename:    FilenameFor(kind, service),
		ContentType: naming.ContentType,
		Data:        []byte(content),
	}
}

// Registry 交付物生成器集合
type Registry struct {
	generators []Generator
	enricher   Enricher
}

// NewRegistry 创建包含全部七个生成器的注册表
// enricher 可为 nil，缺席时生成流程完全不受影响
func NewRegistry(enricher Enricher) *Registry {
	return &Registry{
		enricher: enricher,
		generators: []Generator{
			&proposalGenerator{},
			&technicalGenerator{},
			&templateGenerator{},
			&activitiesGenerator{},
			&costsGenerator{},
			&calculatorGenerator{},
			&architectureGenerator{},
		},
	}
}

// GenerateAll 并行运行全部生成器并做统一的 ASCII 净化收尾
// 单个生成器异常只导致该条目缺席，不影响其余交付物
func (r *Registry) GenerateAll(ctx context.Context, d *entity.ProjectDescriptor, reply string) entity.ArtifactSet {
	start := time.Now()
	results := make([]entity.Artifact, len(r.generators))

	g, gctx := errgroup.WithContext(ctx)
	for i, gen := range r.generators {
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(gctx, "artifact generator panicked", nil,
						"kind", string(gen.Kind()), "panic", rec)
					results[i] = entity.Artifact{}
				}
			}()

			payload := reply
			if r.enricher != nil {
				if extra, ok := r.enricher.Enrich(gctx, gen.Kind(), reply); ok && strings.TrimSpace(extra) != "" {
					payload = reply + "\n" + extra
				}
			}
			results[i] = gen.Generate(d, payload)
			return nil
		})
	}
	_ = g.Wait()

	set := make(entity.ArtifactSet, len(results))
	for _, a := range results {
		if a.Kind == "" {
			continue
		}
		// 净化是唯一出口：所有字节在此统一去重音并截断
		a.Data = capBytes([]byte(StripDiacritics(string(a.Data))), maxArtifactBytes)
		set[a.Kind] = a
	}

	metrics.ArtifactGenerationDuration.WithLabelValues(d.PrimaryService).Observe(time.Since(start).Seconds())
	return set
}

// replyLines 回复按行拆分并去除首尾空白
func replyLines(reply string) []string {
	raw := strings.Split(reply, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// linesContainingAny 过滤出小写后包含任一线索词的行
func linesContainingAny(reply string, cues []string) []string {
	var out []string
	for _, line := range replyLines(reply) {
		lower := strings.ToLower(line)
		for _, cue := range cues {
			if strings.Contains(lower, cue) {
				out = append(out, line)
				break
			}
		}
	}
	return out
}
