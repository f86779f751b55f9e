package domain

import "time"

// SwipeAction is the closed set of interaction kinds. The schema stores a
// string but nothing outside these two values is ever written.
type SwipeAction string

const (
	SwipeRight SwipeAction = "right_swipe"
	SwipeLeft  SwipeAction = "left_swipe"
)

func (a SwipeAction) Valid() bool {
	return a == SwipeRight || a == SwipeLeft
}

// InteractionRecord is one swipe decision by a viewer against one profile.
// Records are immutable: they are inserted once and only ever removed by
// the cascade when the parent profile is deleted.
type InteractionRecord struct {
	ID            int         `json:"id" db:"id"`
	ProfileID     int         `json:"profile_id" db:"profile_id"`
	ViewerSession string      `json:"viewer_session" db:"viewer_session"`
	Action        SwipeAction `json:"action" db:"action"`
	TimeSpent     int         `json:"time_spent" db:"time_spent"`
	ScrollDepth   int         `json:"scroll_depth" db:"scroll_depth"`
	ImageIndex    *int        `json:"image_index" db:"image_index"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

// NewInteractionRecord validates a swipe event and builds the record to
// persist. TimeSpent and ScrollDepth arrive as pointers so a missing value
// is distinguishable from zero.
func NewInteractionRecord(profileID int, viewerSession string, action SwipeAction, timeSpent, scrollDepth, imageIndex *int) (*InteractionRecord, error) {
	if !action.Valid() {
		return nil, NewValidationError("action", "is not included in the list")
	}
	if viewerSession == "" {
		return nil, NewValidationError("viewer_session", "can't be blank")
	}
	if timeSpent == nil {
		return nil, NewValidationError("time_spent", "can't be blank")
	}
	if *timeSpent < 0 {
		return nil, NewValidationError("time_spent", "must be greater than or equal to 0")
	}
	if scrollDepth == nil {
		return nil, NewValidationError("scroll_depth", "can't be blank")
	}
	if *scrollDepth < 0 || *scrollDepth > 100 {
		return nil, NewValidationError("scroll_depth", "must be between 0 and 100")
	}
	return &InteractionRecord{
		ProfileID:     profileID,
		ViewerSession: viewerSession,
		Action:        action,
		TimeSpent:     *timeSpent,
		ScrollDepth:   *scrollDepth,
		ImageIndex:    imageIndex,
	}, nil
}
