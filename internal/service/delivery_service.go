package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery_tracker/internal/model"
	"delivery_tracker/internal/repository"
)

var (
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrForbidden        = errors.New("forbidden: user does not have permission for this action")
	ErrInvalidDate      = errors.New("invalid date, use YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// DeliveryService manages the per-user delivery ledger and the earnings
// summary derived from it.
type DeliveryService interface {
	CreateDelivery(ctx context.Context, userID int, req model.DeliveryRequest) (*model.Delivery, error)
	GetUserDeliveries(ctx context.Context, userID int) ([]model.Delivery, error)
	UpdateDelivery(ctx context.Context, id int64, userID int, req model.DeliveryRequest) (*model.Delivery, error)
	DeleteDelivery(ctx context.Context, id int64, userID int) error
	Earnings(ctx context.Context, userID int) (*model.EarningsSummary, error)
}

type deliveryService struct {
	repo          repository.DeliveryRepository
	ratePerParcel int64
}

// NewDeliveryService creates a new DeliveryService with the configured
// per-parcel rate.
func NewDeliveryService(repo repository.DeliveryRepository, ratePerParcel int64) DeliveryService {
	return &deliveryService{repo: repo, ratePerParcel: ratePerParcel}
}

func parseDay(s string) (time.Time, error) {
	day, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func (s *deliveryService) CreateDelivery(ctx context.Context, userID int, req model.DeliveryRequest) (*model.Delivery, error) {
	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	d := &model.Delivery{
		UserID:    userID,
		Date:      day,
		Delivered: req.Delivered,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create delivery in repo: %w", err)
	}
	return d, nil
}

func (s *deliveryService) GetUserDeliveries(ctx context.Context, userID int) ([]model.Delivery, error) {
	deliveries, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user deliveries from repo: %w", err)
	}
	return deliveries, nil
}

func (s *deliveryService) UpdateDelivery(ctx context.Context, id int64, userID int, req model.DeliveryRequest) (*model.Delivery, error) {
	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find delivery for update: %w", err)
	}
	if existing == nil {
		return nil, ErrDeliveryNotFound
	}
	if existing.UserID != userID { // Only the owner can edit their ledger
		return nil, ErrForbidden
	}

	existing.Date = day
	existing.Delivered = req.Delivered
	if err := s.repo.Update(ctx, existing); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("failed to update delivery in repo: %w", err)
	}
	return existing, nil
}

func (s *deliveryService) DeleteDelivery(ctx context.Context, id int64, userID int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find delivery for deletion: %w", err)
	}
	if existing == nil {
		return ErrDeliveryNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrDeliveryNotFound
		}
		return fmt.Errorf("failed to delete delivery in repo: %w", err)
	}
	return nil
}

// Earnings totals the ledger: delivered parcels times the fixed rate.
func (s *deliveryService) Earnings(ctx context.Context, userID int) (*model.EarningsSummary, error) {
	total, days, err := s.repo.SumDeliveredByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum deliveries: %w", err)
	}
	return &model.EarningsSummary{
		TotalDelivered: total,
		RatePerParcel:  s.ratePerParcel,
		Total:          total * s.ratePerParcel,
		Days:           days,
	}, nil
}
