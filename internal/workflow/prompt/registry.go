package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

const (
	PromptInterviewV1 PromptID = "interview_v1"
)

// Registry 提示词注册表，嵌入式模板带并发安全缓存
type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]string
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]string),
	}
}

// SystemText 返回指定提示词的 system 文本
func (r *Registry) SystemText(id PromptID) (string, error) {
	if r == nil {
		return "", fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if text, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return text, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if text, ok := r.cache[id]; ok {
		return text, nil
	}

	path, err := resolvePromptFile(id)
	if err != nil {
		return "", err
	}
	text, err := readEmbeddedText(path)
	if err != nil {
		return "", err
	}
	r.cache[id] = text
	return text, nil
}

func resolvePromptFile(id PromptID) (string, error) {
	switch id {
	case PromptInterviewV1:
		return "templates/interview_v1.system.txt", nil
	default:
		return "", fmt.Errorf("unknown prompt id: %s", id)
	}
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
