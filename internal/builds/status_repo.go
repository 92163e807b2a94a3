// Package builds tracks APK generation status per app. The build pipeline
// itself does not exist yet; requests are recorded as queued and stay there.
package builds

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	buildKeyPrefix = "apk:build:" // Key per app: apk:build:{app_id}
	buildTTL       = 7 * 24 * time.Hour
)

// Build states. Only "not_started" and "queued" are reachable today.
const (
	StatusNotStarted = "not_started"
	StatusQueued     = "queued"
	StatusGenerating = "generating"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// BuildStatus is the per-app generation record.
type BuildStatus struct {
	AppID         string  `json:"app_id"`
	Status        string  `json:"status"`
	Progress      int     `json:"progress"`
	EstimatedTime string  `json:"estimated_time,omitempty"`
	APKURL        *string `json:"apk_url"`
}

// StatusRepository handles Redis operations for build status records.
type StatusRepository struct {
	client *redis.Client
}

func NewStatusRepository(client *redis.Client) *StatusRepository {
	return &StatusRepository{client: client}
}

// Enqueue records a queued build for the app and returns the stored status.
func (r *StatusRepository) Enqueue(ctx context.Context, appID string) (*BuildStatus, error) {
	status := &BuildStatus{
		AppID:         appID,
		Status:        StatusQueued,
		Progress:      0,
		EstimatedTime: "5-10 minutes",
	}

	data, err := json.Marshal(status)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal build status: %w", err)
	}

	if err := r.client.Set(ctx, r.buildKey(appID), data, buildTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store build status: %w", err)
	}

	return status, nil
}

// Get returns the build status for the app. A missing key means no build has
// ever been requested, reported as "not_started".
func (r *StatusRepository) Get(ctx context.Context, appID string) (*BuildStatus, error) {
	data, err := r.client.Get(ctx, r.buildKey(appID)).Result()
	if err == redis.Nil {
		return &BuildStatus{
			AppID:    appID,
			Status:   StatusNotStarted,
			Progress: 0,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get build status: %w", err)
	}

	var status BuildStatus
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal build status: %w", err)
	}

	return &status, nil
}

func (r *StatusRepository) buildKey(appID string) string {
	return fmt.Sprintf("%s%s", buildKeyPrefix, appID)
}
