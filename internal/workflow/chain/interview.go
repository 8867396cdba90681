package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	llmctx "aws-architect-api/internal/domain/service"
	wfmodel "aws-architect-api/internal/workflow/model"
	workflowport "aws-architect-api/internal/workflow/port"
	workflowprompt "aws-architect-api/internal/workflow/prompt"
)

var defaultPromptRegistry = workflowprompt.NewRegistry()

// InterviewChain 访谈回复生成链：init -> template -> llm -> finalize
type InterviewChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*wfmodel.InterviewGenerateInput, *schema.Message]
	chainErr  error
}

func NewInterviewChain(factory workflowport.ChatModelFactory) *InterviewChain {
	return &InterviewChain{factory: factory}
}

func (c *InterviewChain) Invoke(ctx context.Context, in *wfmodel.InterviewGenerateInput) (*schema.Message, error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, in)
}

type interviewChainState struct {
	In       *wfmodel.InterviewGenerateInput
	Messages []*schema.Message
	OutMsg   *schema.Message
}

func (c *InterviewChain) getChain() (compose.Runnable[*wfmodel.InterviewGenerateInput, *schema.Message], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *InterviewChain) buildChain(ctx context.Context) (compose.Runnable[*wfmodel.InterviewGenerateInput, *schema.Message], error) {
	chain := compose.NewChain[*wfmodel.InterviewGenerateInput, *schema.Message]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *wfmodel.InterviewGenerateInput) (*interviewChainState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			if len(in.Turns) == 0 {
				return nil, fmt.Errorf("turns are empty")
			}
			return &interviewChainState{In: in}, nil
		}),
		compose.WithNodeName("interview.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *interviewChainState) (*interviewChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			msgs, err := formatInterviewMessages(st.In)
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("interview.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *interviewChainState) (*interviewChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			if c.factory == nil {
				return nil, fmt.Errorf("llm factory not configured")
			}

			ctx = llmctx.WithWorkflowProvider(ctx, "interview_generate", strings.TrimSpace(st.In.Provider))
			chatModel, err := c.factory.Get(ctx, strings.TrimSpace(st.In.Provider))
			if err != nil {
				return nil, err
			}

			outMsg, err := chatModel.Generate(ctx, st.Messages, buildInterviewModelOptions(st.In)...)
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("interview.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *interviewChainState) (*schema.Message, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return st.OutMsg, nil
		}),
		compose.WithNodeName("interview.finalize"),
	)

	return chain.Compile(ctx)
}

// formatInterviewMessages 系统提示词在前，其后按原顺序附加全部对话轮次
func formatInterviewMessages(in *wfmodel.InterviewGenerateInput) ([]*schema.Message, error) {
	system, err := defaultPromptRegistry.SystemText(workflowprompt.PromptInterviewV1)
	if err != nil {
		return nil, err
	}

	msgs := make([]*schema.Message, 0, len(in.Turns)+1)
	msgs = append(msgs, schema.SystemMessage(system))
	for _, turn := range in.Turns {
		content := strings.TrimSpace(turn.Content)
		switch strings.ToLower(strings.TrimSpace(turn.Role)) {
		case "assistant":
			msgs = append(msgs, schema.AssistantMessage(content, nil))
		case "system":
			msgs = append(msgs, schema.SystemMessage(content))
		default:
			msgs = append(msgs, schema.UserMessage(content))
		}
	}
	return msgs, nil
}

func buildInterviewModelOptions(in *wfmodel.InterviewGenerateInput) []model.Option {
	opts := make([]model.Option, 0, 3)
	if in == nil {
		return opts
	}
	if in.Temperature != nil {
		opts = append(opts, model.WithTemperature(*in.Temperature))
	}
	if in.MaxTokens != nil {
		opts = append(opts, model.WithMaxTokens(*in.MaxTokens))
	}
	if strings.TrimSpace(in.Model) != "" {
		opts = append(opts, model.WithModel(strings.TrimSpace(in.Model)))
	}
	return opts
}
