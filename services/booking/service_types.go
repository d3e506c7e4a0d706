package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

// defaultServiceTypes seeds an empty catalogue so a fresh install is
// bookable out of the box.
var defaultServiceTypes = []models.ServiceType{
	{ID: "st-consultation", Name: "Discovery Consultation", Description: "Intro call to scope a project", Category: "consultation", Duration: 30, Price: 0, BufferMinutes: 0, MaxCapacity: 1, Color: "#3b82f6", Active: true},
	{ID: "st-strategy", Name: "Strategy Session", Description: "Deep-dive planning session", Category: "strategy", Duration: 60, Price: 150, BufferMinutes: 15, MaxCapacity: 1, Color: "#8b5cf6", Active: true},
	{ID: "st-audit", Name: "Portfolio Audit", Description: "Review of existing work with written feedback", Category: "audit", Duration: 45, Price: 95, BufferMinutes: 15, MaxCapacity: 1, Color: "#f59e0b", Active: true},
	{ID: "st-workshop", Name: "Team Workshop", Description: "Hands-on group workshop", Category: "workshop", Duration: 120, Price: 450, BufferMinutes: 30, MaxCapacity: 10, Color: "#10b981", Active: true},
	{ID: "st-rental", Name: "Studio Rental", Description: "Half-day studio hire", Category: "rental", Duration: 240, Price: 300, BufferMinutes: 30, MaxCapacity: 1, Color: "#ef4444", Active: true},
}

// EnsureDefaultServiceTypes seeds the catalogue when it is empty. Called once
// at startup.
func (svc *DefaultBookingService) EnsureDefaultServiceTypes(ctx context.Context) error {
	n, err := svc.Types.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count service types: %w", err)
	}
	if n > 0 {
		return nil
	}
	for i := range defaultServiceTypes {
		st := defaultServiceTypes[i]
		if err := svc.Types.Create(ctx, &st); err != nil {
			return fmt.Errorf("failed to seed service type %s: %w", st.ID, err)
		}
	}
	utils.GetLogger().Info("Seeded default service types",
		zap.Int("count", len(defaultServiceTypes)))
	return nil
}

// ListServiceTypes returns the bookable service catalogue.
func (svc *DefaultBookingService) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	types, err := svc.Types.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	return types, nil
}

// CreateServiceType adds an offering to the catalogue.
func (svc *DefaultBookingService) CreateServiceType(ctx context.Context, st *models.ServiceType) (*models.ServiceType, error) {
	if st.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidServiceType)
	}
	if st.Duration <= 0 {
		st.Duration = 30
	}
	if st.MaxCapacity <= 0 {
		st.MaxCapacity = 1
	}
	st.Active = true

	if err := svc.Types.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to create service type: %w", err)
	}
	utils.GetLogger().Info("Service type created",
		zap.String("serviceTypeId", st.ID), zap.String("name", st.Name))
	return st, nil
}

// UpdateServiceType saves catalogue edits.
func (svc *DefaultBookingService) UpdateServiceType(ctx context.Context, st *models.ServiceType) (*models.ServiceType, error) {
	if st.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidServiceType)
	}
	existing, err := svc.serviceType(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	st.CreatedAt = existing.CreatedAt

	if err := svc.Types.Update(ctx, st); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownServiceType, st.ID)
		}
		return nil, fmt.Errorf("failed to update service type %s: %w", st.ID, err)
	}
	return st, nil
}

// DeleteServiceType removes an offering. Existing bookings keep their copied
// service name and price.
func (svc *DefaultBookingService) DeleteServiceType(ctx context.Context, id string) error {
	if err := svc.Types.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: %s", ErrUnknownServiceType, id)
		}
		return fmt.Errorf("failed to delete service type %s: %w", id, err)
	}
	return nil
}

func (svc *DefaultBookingService) serviceType(ctx context.Context, id string) (*models.ServiceType, error) {
	st, err := svc.Types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownServiceType, id)
		}
		return nil, fmt.Errorf("failed to fetch service type %s: %w", id, err)
	}
	return st, nil
}

// bookingTypeFor maps a service type's category onto the booking type enum.
func bookingTypeFor(st *models.ServiceType) string {
	switch st.Category {
	case "workshop", "class":
		return models.BookingTypeClass
	case "rental":
		return models.BookingTypeRental
	case "event":
		return models.BookingTypeEvent
	default:
		return models.BookingTypeConsultation
	}
}
