// Package repository 定义领域仓储接口
package repository

import (
	"context"
	"time"
)

// ObjectStore 对象存储接口
// 写入为幂等 put，相同 key 覆盖旧内容
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
