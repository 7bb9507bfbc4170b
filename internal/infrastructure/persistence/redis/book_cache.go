package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/pkg/metrics"
)

// BookCache 图书读侧缓存(Cache-Aside模式)
// 设计说明：
// 1. 缓存图书详情(含预载的作者与书评)和书评聚合统计两类读热点
// 2. Key设计：book:detail:{id}、book:stats:{id}
// 3. 未命中返回(nil, nil),由调用方回源数据库并回填
// 4. 图书或其书评发生任何写入时整体失效(InvalidateBook)
// 5. 缓存故障只记录日志不向上传播,读路径降级为直连数据库
type BookCache struct {
	client    *redis.Client
	detailTTL time.Duration
	statsTTL  time.Duration
}

// NewBookCache 创建图书缓存
func NewBookCache(client *redis.Client, detailTTL, statsTTL time.Duration) *BookCache {
	return &BookCache{
		client:    client,
		detailTTL: detailTTL,
		statsTTL:  statsTTL,
	}
}

// detailKey 图书详情缓存Key
func detailKey(id uint) string {
	return fmt.Sprintf("book:detail:%d", id)
}

// statsKey 书评统计缓存Key
func statsKey(id uint) string {
	return fmt.Sprintf("book:stats:%d", id)
}

// GetDetail 读取图书详情缓存
func (c *BookCache) GetDetail(ctx context.Context, id uint) (*book.Book, error) {
	data, err := c.client.Get(ctx, detailKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.IncCounterVec(metrics.CacheMissesTotal, map[string]string{"key_type": "detail"})
			return nil, nil
		}
		log.Warn().Err(err).Uint("book_id", id).Msg("读取图书详情缓存失败")
		return nil, nil // 缓存故障降级为未命中
	}

	var b book.Book
	if err := json.Unmarshal(data, &b); err != nil {
		log.Warn().Err(err).Uint("book_id", id).Msg("图书详情缓存反序列化失败")
		return nil, nil
	}

	metrics.IncCounterVec(metrics.CacheHitsTotal, map[string]string{"key_type": "detail"})
	return &b, nil
}

// SetDetail 回填图书详情缓存
func (c *BookCache) SetDetail(ctx context.Context, b *book.Book) {
	data, err := json.Marshal(b)
	if err != nil {
		log.Warn().Err(err).Uint("book_id", b.ID).Msg("图书详情缓存序列化失败")
		return
	}
	if err := c.client.Set(ctx, detailKey(b.ID), data, c.detailTTL).Err(); err != nil {
		log.Warn().Err(err).Uint("book_id", b.ID).Msg("写入图书详情缓存失败")
	}
}

// GetStats 读取书评统计缓存
func (c *BookCache) GetStats(ctx context.Context, id uint) (*book.ReviewStats, error) {
	data, err := c.client.Get(ctx, statsKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.IncCounterVec(metrics.CacheMissesTotal, map[string]string{"key_type": "stats"})
			return nil, nil
		}
		log.Warn().Err(err).Uint("book_id", id).Msg("读取书评统计缓存失败")
		return nil, nil
	}

	var stats book.ReviewStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Warn().Err(err).Uint("book_id", id).Msg("书评统计缓存反序列化失败")
		return nil, nil
	}

	metrics.IncCounterVec(metrics.CacheHitsTotal, map[string]string{"key_type": "stats"})
	return &stats, nil
}

// SetStats 回填书评统计缓存
func (c *BookCache) SetStats(ctx context.Context, id uint, stats *book.ReviewStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		log.Warn().Err(err).Uint("book_id", id).Msg("书评统计缓存序列化失败")
		return
	}
	if err := c.client.Set(ctx, statsKey(id), data, c.statsTTL).Err(); err != nil {
		log.Warn().Err(err).Uint("book_id", id).Msg("写入书评统计缓存失败")
	}
}

// InvalidateBook 失效某图书的全部缓存
// 图书本身或其任一书评发生写入时调用
func (c *BookCache) InvalidateBook(ctx context.Context, id uint) {
	if err := c.client.Del(ctx, detailKey(id), statsKey(id)).Err(); err != nil {
		log.Warn().Err(err).Uint("book_id", id).Msg("失效图书缓存失败")
	}
}
