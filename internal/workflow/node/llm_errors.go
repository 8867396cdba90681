package node

import (
	"context"
	"errors"
	"strings"

	apperrors "aws-architect-api/pkg/errors"
)

// ClassifyLLMError 将底层模型错误归类为统一错误码
// 超时与连接类故障归为模型不可用，请求被拒归为输入被拒，
// 其余一律按模型不可用处理
func ClassifyLLMError(err error) *apperrors.AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Wrap(err, apperrors.CodeModelUnavailable, "model call timed out")
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "timeout", "deadline", "connection refused", "connection reset",
		"no such host", "unavailable", "bad gateway", "status code: 502", "status code: 503", "status code: 504"):
		return apperrors.Wrap(err, apperrors.CodeModelUnavailable, "model unavailable")
	case containsAny(msg, "invalid request", "invalid_request", "content filter", "content_filter",
		"rejected", "unsupported", "context length", "maximum context", "status code: 400", "status code: 422"):
		return apperrors.Wrap(err, apperrors.CodeModelRejectedInput, "model rejected input")
	default:
		return apperrors.Wrap(err, apperrors.CodeModelUnavailable, "model call failed")
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
