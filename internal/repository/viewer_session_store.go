package repository

import "context"

// ViewerSessionStore holds the ephemeral per-browsing-session state for
// spectator mode: the set of profile IDs already shown. Implementations
// are expected to be short-lived storage (the redis one expires keys).
type ViewerSessionStore interface {
	SeenProfileIDs(ctx context.Context, viewerSession string) ([]int, error)
	AddSeenProfile(ctx context.Context, viewerSession string, profileID int) error
	ClearSeen(ctx context.Context, viewerSession string) error
}
