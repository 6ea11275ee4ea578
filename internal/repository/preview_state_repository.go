package repository

import (
	"context"
	"course_studio_backend/internal/model"
	"course_studio_backend/internal/util"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	previewSelectionKeyPrefix = "preview_selection:"
	quizAttemptKeyPrefix      = "quiz_attempt:"
)

// PreviewStateRepository 预览会话的临时状态存取。
// 状态只进 Redis，带 TTL；会话关闭或过期即消失，不与任何持久化数据同步。
type PreviewStateRepository struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewPreviewStateRepository(rdb *redis.Client, ttl time.Duration) *PreviewStateRepository {
	return &PreviewStateRepository{Redis: rdb, TTL: ttl}
}

func (r *PreviewStateRepository) SaveSelection(ctx context.Context, sel *model.PreviewSelection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, previewSelectionKeyPrefix+sel.SessionID, data, r.TTL).Err()
}

func (r *PreviewStateRepository) LoadSelection(ctx context.Context, sessionID string) (*model.PreviewSelection, error) {
	data, err := r.Redis.Get(ctx, previewSelectionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sel model.PreviewSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (r *PreviewStateRepository) SaveAttempt(ctx context.Context, sessionID string, state *model.QuizAttemptState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, quizAttemptKeyPrefix+sessionID, data, r.TTL).Err()
}

func (r *PreviewStateRepository) LoadAttempt(ctx context.Context, sessionID string) (*model.QuizAttemptState, error) {
	data, err := r.Redis.Get(ctx, quizAttemptKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var state model.QuizAttemptState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *PreviewStateRepository) DeleteAttempt(ctx context.Context, sessionID string) error {
	return r.Redis.Del(ctx, quizAttemptKeyPrefix+sessionID).Err()
}

// DeleteSession 关闭会话时无条件清掉全部临时状态
func (r *PreviewStateRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Redis.Del(ctx,
		previewSelectionKeyPrefix+sessionID,
		quizAttemptKeyPrefix+sessionID,
	).Err()
}
