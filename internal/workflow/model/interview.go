package model

// InterviewTurn 访谈对话中的一条消息
type InterviewTurn struct {
	Role    string
	Content string
}

// InterviewGenerateInput 定义访谈回复生成器的输入参数
type InterviewGenerateInput struct {
	Turns []InterviewTurn

	Provider string
	Model    string

	Temperature *float32
	MaxTokens   *int
}
