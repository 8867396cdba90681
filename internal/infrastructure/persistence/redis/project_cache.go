// Package redis 提供 Redis 缓存实现
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aws-architect-api/internal/domain/entity"
)

const projectCacheTTL = 5 * time.Minute

// ProjectRecordCache 项目元数据读缓存
// 读路径加速，缓存故障只降级为直查数据库
type ProjectRecordCache struct {
	client *Client
}

// NewProjectRecordCache 创建项目元数据缓存
func NewProjectRecordCache(client *Client) *ProjectRecordCache {
	return &ProjectRecordCache{client: client}
}

func projectCacheKey(projectID string) string {
	return fmt.Sprintf("project:%s", projectID)
}

// Get 读取缓存的元数据行，未命中返回 (nil, nil)
func (c *ProjectRecordCache) Get(ctx context.Context, projectID string) (*entity.ProjectRecord, error) {
	raw, err := c.client.Get(ctx, projectCacheKey(projectID))
	if err != nil {
		if IsNil(err) {
			return nil, nil
		}
		return nil, err
	}

	var record entity.ProjectRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to decode cached project record: %w", err)
	}
	return &record, nil
}

// Set 写入缓存
func (c *ProjectRecordCache) Set(ctx context.Context, record *entity.ProjectRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode project record: %w", err)
	}
	return c.client.Set(ctx, projectCacheKey(record.ProjectID), raw, projectCacheTTL)
}

// Invalidate 失效缓存条目
func (c *ProjectRecordCache) Invalidate(ctx context.Context, projectID string) error {
	return c.client.Del(ctx, projectCacheKey(projectID))
}
