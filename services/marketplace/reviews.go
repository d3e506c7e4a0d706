package marketplace

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

// SubmitReview records buyer feedback in pending state for moderation.
func (svc *DefaultMarketplaceService) SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := svc.GetListing(ctx, review.ListingID); err != nil {
		return nil, err
	}

	review.Status = models.ReviewStatusPending
	review.Helpful = 0
	review.NotHelpful = 0
	if err := svc.Reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ModerateReview sets a review's status and, when the approved set changed,
// recomputes the listing's rating roll-up.
func (svc *DefaultMarketplaceService) ModerateReview(ctx context.Context, id, status string) error {
	review, err := svc.Reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to fetch review %s: %w", id, err)
	}

	if err := svc.Reviews.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to set review %s status: %w", id, err)
	}

	// The roll-up only shifts when a review enters or leaves the approved set.
	if status == models.ReviewStatusApproved || review.Status == models.ReviewStatusApproved {
		if err := svc.recomputeRating(ctx, review.ListingID); err != nil {
			utils.GetLogger().Warn("Failed to recompute listing rating",
				zap.String("listingId", review.ListingID), zap.Error(err))
		}
	}
	return nil
}

// ListReviews returns a listing's reviews, optionally restricted to the
// approved set shown publicly.
func (svc *DefaultMarketplaceService) ListReviews(ctx context.Context, listingID string, approvedOnly bool) ([]models.Review, error) {
	reviews, err := svc.Reviews.GetByListing(ctx, listingID, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for %s: %w", listingID, err)
	}
	return reviews, nil
}

func (svc *DefaultMarketplaceService) recomputeRating(ctx context.Context, listingID string) error {
	approved, err := svc.Reviews.GetByListing(ctx, listingID, true)
	if err != nil {
		return err
	}
	rating := 0.0
	if len(approved) > 0 {
		sum := 0
		for _, r := range approved {
			sum += r.Rating
		}
		rating = float64(sum) / float64(len(approved))
	}
	return svc.Listings.SetRating(ctx, listingID, rating, len(approved))
}
