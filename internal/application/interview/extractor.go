// Package interview 实现访谈语料的上下文提取与就绪度评估
package interview

import (
	"strings"
	"unicode/utf8"

	"aws-architect-api/internal/domain/entity"
)

// maxFieldRunes 描述与目标字段的硬性字符上限
const maxFieldRunes = 200

// maxNameTokens 可作为项目名的用户轮次最大分词数
const maxNameTokens = 5

// Extractor 项目上下文提取器
// 纯函数实现：相同输入必然产出字节一致的描述符，绝不失败
type Extractor struct{}

// NewExtractor 创建提取器
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract 从对话记录与最后一次模型回复中提炼项目描述符
// project_id/user_id 由调用方在管道层填充
func (e *Extractor) Extract(transcript *entity.Transcript, lastReply string) *entity.ProjectDescriptor {
	corpus := strings.ToLower(transcript.JoinedText() + "\n" + lastReply)

	primary, mentioned := matchServices(corpus)

	d := &entity.ProjectDescriptor{
		UserID:            entity.DefaultUserID,
		Name:              extractName(transcript),
		Kind:              classifyKind(corpus),
		PrimaryService:    primary,
		MentionedServices: mentioned,
	}
	d.Description = extractDescription(transcript, lastReply, primary)
	d.Objective = extractObjective(transcript, lastReply, primary)
	return d
}

// matchServices 在语料中统计服务词典命中
// 返回计数最高的服务名（平局取词典序靠前者）与全部命中集合
func matchServices(corpus string) (primary string, mentioned []string) {
	primary = entity.DefaultPrimaryService
	best := 0
	for _, m := range serviceMatchers {
		count := 0
		for _, p := range m.Patterns {
			count += len(p.FindAllStringIndex(corpus, -1))
		}
		if count == 0 {
			continue
		}
		mentioned = append(mentioned, m.Name)
		if count > best {
			best = count
			primary = m.Name
		}
	}
	return primary, mentioned
}

// classifyKind 按关键词归类项目类型，整体方案优先于快速服务
func classifyKind(corpus string) entity.ProjectKind {
	for _, p := range integralTerms {
		if p.MatchString(corpus) {
			return entity.ProjectKindIntegralSolution
		}
	}
	for _, p := range quickTerms {
		if p.MatchString(corpus) {
			return entity.ProjectKindQuickService
		}
	}
	return entity.ProjectKindUnknown
}

// extractName 取第一个非问候且不超过 maxNameTokens 个分词的用户轮次
func extractName(transcript *entity.Transcript) string {
	for _, turn := range transcript.UserTurns() {
		text := strings.TrimSpace(turn.Content)
		if text == "" {
			continue
		}
		if len(strings.Fields(text)) > maxNameTokens {
			continue
		}
		if isGreeting(text) {
			continue
		}
		return truncateByRunes(text, maxFieldRunes)
	}
	return entity.DefaultProjectName
}

// isGreeting 判断整个轮次是否为问候语
func isGreeting(text string) bool {
	normalized := strings.ToLower(strings.Trim(text, " \t.,!?¡¿"))
	_, ok := greetingSet[normalized]
	return ok
}

// extractDescription 扫描用户轮次与回复，取第一个命中需求模式的句子
func extractDescription(transcript *entity.Transcript, lastReply, primary string) string {
	if s, ok := firstMatchingSentence(transcript, lastReply, needPattern); ok {
		return truncateByRunes(s, maxFieldRunes)
	}
	return "Implementation of " + primary + "-based enterprise solution."
}

// extractObjective 扫描用户轮次与回复，取第一个命中目标模式的句子
// 未命中时按主服务查兜底表
func extractObjective(transcript *entity.Transcript, lastReply, primary string) string {
	if s, ok := firstMatchingSentence(transcript, lastReply, objectivePattern); ok {
		return truncateByRunes(s, maxFieldRunes)
	}
	if objective, ok := defaultObjectives[primary]; ok {
		return objective
	}
	return defaultObjectiveFallback
}

// firstMatchingSentence 按轮次顺序切句并返回第一个命中模式的句子
func firstMatchingSentence(transcript *entity.Transcript, lastReply string, pattern interface{ MatchString(string) bool }) (string, bool) {
	sources := make([]string, 0, transcript.Len()+1)
	for _, turn := range transcript.UserTurns() {
		sources = append(sources, turn.Content)
	}
	sources = append(sources, lastReply)

	for _, source := range sources {
		for _, sentence := range sentenceBoundary.Split(source, -1) {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			if pattern.MatchString(sentence) {
				return sentence, true
			}
		}
	}
	return "", false
}

// truncateByRunes 按字符数截断，绝不切断多字节序列
func truncateByRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}
