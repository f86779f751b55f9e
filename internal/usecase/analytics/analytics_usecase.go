package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/repository"
)

const recentInteractionLimit = 50

type AnalyticsUseCase struct {
	profileRepo     repository.ProfileRepository
	interactionRepo repository.InteractionRepository
}

func NewAnalyticsUseCase(
	profileRepo repository.ProfileRepository,
	interactionRepo repository.InteractionRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
	}
}

// ProfileStats are the aggregates derived from a profile's full
// interaction history. Per-action image-index averages are nil (not 0)
// when no qualifying records exist; every other aggregate defaults to 0.
type ProfileStats struct {
	TotalViews                     int               `json:"total_views"`
	RightSwipes                    int               `json:"right_swipes"`
	LeftSwipes                     int               `json:"left_swipes"`
	SwipeRightRate                 float64           `json:"swipe_right_rate"`
	AverageTimeSpent               float64           `json:"average_time_spent"`
	AverageScrollDepth             float64           `json:"average_scroll_depth"`
	AverageImagesViewed            float64           `json:"average_images_viewed"`
	AverageImageIndexForRightSwipe *float64          `json:"average_image_index_for_right_swipes"`
	AverageImageIndexForLeftSwipe  *float64          `json:"average_image_index_for_left_swipes"`
	ImageIndexDistribution         []ImageIndexCount `json:"image_index_distribution"`
}

// ImageIndexCount is one (image index, action) bucket of the
// distribution.
type ImageIndexCount struct {
	ImageIndex int                `json:"image_index"`
	Action     domain.SwipeAction `json:"action"`
	Count      int                `json:"count"`
}

// AnalyticsResponse is what the owner-facing analytics endpoint renders.
type AnalyticsResponse struct {
	ProfileID    int                         `json:"profile_id"`
	Stats        *ProfileStats               `json:"stats"`
	Interactions []*domain.InteractionRecord `json:"interactions"`
}

// ProfileAnalytics computes aggregates for one of the user's own
// profiles, always from the current record set. There is no caching:
// a write immediately before this call is reflected in the result.
func (uc *AnalyticsUseCase) ProfileAnalytics(ctx context.Context, userID, profileID int) (*AnalyticsResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(userID) {
		return nil, domain.ErrProfileNotFound
	}

	records, err := uc.interactionRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	recent, err := uc.interactionRepo.ListRecentByProfile(ctx, profileID, recentInteractionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent interactions: %w", err)
	}
	if recent == nil {
		recent = []*domain.InteractionRecord{}
	}

	return &AnalyticsResponse{
		ProfileID:    profileID,
		Stats:        ComputeStats(records),
		Interactions: recent,
	}, nil
}

// ComputeStats derives all aggregates from a full scan of the records.
func ComputeStats(records []*domain.InteractionRecord) *ProfileStats {
	stats := &ProfileStats{}

	var (
		timeSum, depthSum, indexSum         int
		rightIndexSum, leftIndexSum         int
		indexCount, rightIndexN, leftIndexN int
	)
	distribution := map[ImageIndexCount]int{}

	for _, rec := range records {
		switch rec.Action {
		case domain.SwipeRight:
			stats.RightSwipes++
		case domain.SwipeLeft:
			stats.LeftSwipes++
		default:
			// Schema allows arbitrary strings; only swipes count.
			continue
		}
		stats.TotalViews++
		timeSum += rec.TimeSpent
		depthSum += rec.ScrollDepth

		if rec.ImageIndex == nil {
			continue
		}
		idx := *rec.ImageIndex
		indexSum += idx
		indexCount++
		if rec.Action == domain.SwipeRight {
			rightIndexSum += idx
			rightIndexN++
		} else {
			leftIndexSum += idx
			leftIndexN++
		}
		distribution[ImageIndexCount{ImageIndex: idx, Action: rec.Action}]++
	}

	if stats.TotalViews > 0 {
		stats.SwipeRightRate = round2(float64(stats.RightSwipes) / float64(stats.TotalViews) * 100)
		stats.AverageTimeSpent = round2(float64(timeSum) / float64(stats.TotalViews))
		stats.AverageScrollDepth = round2(float64(depthSum) / float64(stats.TotalViews))
	}
	if indexCount > 0 {
		// 1-based "photos viewed" approximation.
		stats.AverageImagesViewed = round2(float64(indexSum)/float64(indexCount) + 1)
	}
	if rightIndexN > 0 {
		avg := round2(float64(rightIndexSum) / float64(rightIndexN))
		stats.AverageImageIndexForRightSwipe = &avg
	}
	if leftIndexN > 0 {
		avg := round2(float64(leftIndexSum) / float64(leftIndexN))
		stats.AverageImageIndexForLeftSwipe = &avg
	}

	stats.ImageIndexDistribution = make([]ImageIndexCount, 0, len(distribution))
	for bucket, count := range distribution {
		bucket.Count = count
		stats.ImageIndexDistribution = append(stats.ImageIndexDistribution, bucket)
	}
	sort.Slice(stats.ImageIndexDistribution, func(i, j int) bool {
		a, b := stats.ImageIndexDistribution[i], stats.ImageIndexDistribution[j]
		if a.ImageIndex != b.ImageIndex {
			return a.ImageIndex < b.ImageIndex
		}
		return a.Action < b.Action
	})

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
