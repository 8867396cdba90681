// Package entity 定义领域实体
package entity

import "strings"

// Turn 对话中的一轮发言
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript 请求内不可变的对话记录
// 构造后只读，所有读取方法不暴露内部切片
type Transcript struct {
	turns []Turn
}

// NewTranscript 创建对话记录，拷贝输入切片以保证不可变
func NewTranscript(turns []Turn) *Transcript {
	copied := make([]Turn, len(turns))
	copy(copied, turns)
	return &Transcript{turns: copied}
}

// Turns 返回全部轮次的拷贝
func (t *Transcript) Turns() []Turn {
	if t == nil {
		return nil
	}
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len 返回轮次数
func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}
	return len(t.turns)
}

// UserTurns 返回所有用户轮次
func (t *Transcript) UserTurns() []Turn {
	if t == nil {
		return nil
	}
	out := make([]Turn, 0, len(t.turns))
	for _, turn := range t.turns {
		if turn.Role == RoleUser {
			out = append(out, turn)
		}
	}
	return out
}

// LastUserTurn 返回最后一个用户轮次，不存在时 ok 为 false
func (t *Transcript) LastUserTurn() (Turn, bool) {
	if t == nil {
		return Turn{}, false
	}
	for i := len(t.turns) - 1; i >= 0; i-- {
		if t.turns[i].Role == RoleUser {
			return t.turns[i], true
		}
	}
	return Turn{}, false
}

// JoinedText 返回全部轮次文本，以换行拼接
func (t *Transcript) JoinedText() string {
	if t == nil {
		return ""
	}
	parts := make([]string, 0, len(t.turns))
	for _, turn := range t.turns {
		parts = append(parts, turn.Content)
	}
	return strings.Join(parts, "\n")
}
