package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

// GetAvailability returns a provider's saved schedule, or the standard
// weekday schedule when they have never saved one.
func (svc *DefaultBookingService) GetAvailability(ctx context.Context, providerID string) (*models.ProviderAvailability, error) {
	av, err := svc.Availability.GetByProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.DefaultAvailability(providerID), nil
		}
		return nil, fmt.Errorf("failed to fetch availability for provider %s: %w", providerID, err)
	}
	return av, nil
}

// SetAvailability saves a provider's schedule, replacing the previous one.
// Zero window fields fall back to the defaults.
func (svc *DefaultBookingService) SetAvailability(ctx context.Context, av *models.ProviderAvailability) (*models.ProviderAvailability, error) {
	if av.ProviderID == "" {
		return nil, fmt.Errorf("%w: provider id is required", ErrInvalidSchedule)
	}
	if av.Window == (models.SlotWindow{}) {
		av.Window = models.DefaultSlotWindow()
	}
	if av.Window.EndHour <= av.Window.StartHour {
		return nil, fmt.Errorf("%w: window must end after it starts", ErrInvalidSchedule)
	}

	existing, err := svc.Availability.GetByProvider(ctx, av.ProviderID)
	if err == nil {
		av.ID = existing.ID
		av.CreatedAt = existing.CreatedAt
		if av.TimeOff == nil {
			av.TimeOff = existing.TimeOff
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to load availability for provider %s: %w", av.ProviderID, err)
	}
	if av.TimeOff == nil {
		av.TimeOff = []models.TimeOff{}
	}

	if err := svc.Availability.Upsert(ctx, av); err != nil {
		return nil, fmt.Errorf("failed to save availability for provider %s: %w", av.ProviderID, err)
	}
	utils.GetLogger().Info("Availability saved",
		zap.String("providerId", av.ProviderID))
	return av, nil
}

// AddTimeOff blocks a time range on a provider's schedule. A provider who
// never saved a schedule gets the default one with the block applied.
func (svc *DefaultBookingService) AddTimeOff(ctx context.Context, providerID string, off models.TimeOff) (*models.ProviderAvailability, error) {
	if !off.End.After(off.Start) {
		return nil, fmt.Errorf("%w: time off must end after it starts", ErrInvalidSchedule)
	}

	av, err := svc.GetAvailability(ctx, providerID)
	if err != nil {
		return nil, err
	}
	off.ID = uuid.New().String()
	av.TimeOff = append(av.TimeOff, off)

	if err := svc.Availability.Upsert(ctx, av); err != nil {
		return nil, fmt.Errorf("failed to save time off for provider %s: %w", providerID, err)
	}
	utils.GetLogger().Info("Time off added",
		zap.String("providerId", providerID),
		zap.Time("start", off.Start), zap.Time("end", off.End))
	return av, nil
}

// RemoveTimeOff drops one time-off entry. Removing an unknown entry is a
// no-op, matching the tolerant add/remove pairing a schedule UI expects.
func (svc *DefaultBookingService) RemoveTimeOff(ctx context.Context, providerID, timeOffID string) (*models.ProviderAvailability, error) {
	av, err := svc.GetAvailability(ctx, providerID)
	if err != nil {
		return nil, err
	}

	kept := av.TimeOff[:0]
	for _, off := range av.TimeOff {
		if off.ID != timeOffID {
			kept = append(kept, off)
		}
	}
	av.TimeOff = kept

	if err := svc.Availability.Upsert(ctx, av); err != nil {
		return nil, fmt.Errorf("failed to save time off for provider %s: %w", providerID, err)
	}
	return av, nil
}

// providerSchedule loads the schedule used by slot generation and conflict
// checks. A nil repository (or a provider with no saved schedule) yields the
// default schedule.
func (svc *DefaultBookingService) providerSchedule(ctx context.Context, providerID string) (*models.ProviderAvailability, error) {
	if svc.Availability == nil {
		return models.DefaultAvailability(providerID), nil
	}
	return svc.GetAvailability(ctx, providerID)
}
