package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spotlight-dating/spotlight-backend/internal/repository"
)

// seenTTL bounds how long a browsing session's seen-set survives without
// activity. Spectator state is ephemeral by design.
const seenTTL = 24 * time.Hour

type viewerSessionStore struct {
	client *goredis.Client
}

func NewViewerSessionStore(client *goredis.Client) repository.ViewerSessionStore {
	return &viewerSessionStore{client: client}
}

func seenKey(viewerSession string) string {
	return fmt.Sprintf("spectator:seen:%s", viewerSession)
}

func (s *viewerSessionStore) SeenProfileIDs(ctx context.Context, viewerSession string) ([]int, error) {
	members, err := s.client.SMembers(ctx, seenKey(viewerSession)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read seen set: %w", err)
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *viewerSessionStore) AddSeenProfile(ctx context.Context, viewerSession string, profileID int) error {
	key := seenKey(viewerSession)
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, profileID)
	pipe.Expire(ctx, key, seenTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark profile seen: %w", err)
	}
	return nil
}

func (s *viewerSessionStore) ClearSeen(ctx context.Context, viewerSession string) error {
	if err := s.client.Del(ctx, seenKey(viewerSession)).Err(); err != nil {
		return fmt.Errorf("failed to clear seen set: %w", err)
	}
	return nil
}
