package service

import (
	"context"
	"errors"
	"fmt"

	"delivery_tracker/internal/model"
	"delivery_tracker/internal/repository"
)

var ErrStreetNotFound = errors.New("street not found")

// StreetService defines operations for the street reference list
type StreetService interface {
	ListStreets(ctx context.Context) ([]model.Street, error)
	CreateStreet(ctx context.Context, req model.CreateStreetRequest) (*model.Street, error)
	ReorderStreets(ctx context.Context, req model.ReorderStreetsRequest) error
	DeleteStreet(ctx context.Context, id int64) error
}

type streetService struct {
	repo repository.StreetRepository
}

// NewStreetService creates a new StreetService
func NewStreetService(repo repository.StreetRepository) StreetService {
	return &streetService{repo: repo}
}

func (s *streetService) ListStreets(ctx context.Context) ([]model.Street, error) {
	streets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list streets from repo: %w", err)
	}
	return streets, nil
}

func (s *streetService) CreateStreet(ctx context.Context, req model.CreateStreetRequest) (*model.Street, error) {
	street := &model.Street{
		Name:           req.Name,
		GoogleMapsName: req.GoogleMapsName,
	}
	if err := s.repo.Create(ctx, street); err != nil {
		return nil, fmt.Errorf("failed to create street in repo: %w", err)
	}
	return street, nil
}

// ReorderStreets applies a full reordering as a single unit: either
// every street gets its new order or none does.
func (s *streetService) ReorderStreets(ctx context.Context, req model.ReorderStreetsRequest) error {
	if err := s.repo.UpdateOrder(ctx, req.Order); err != nil {
		return fmt.Errorf("failed to reorder streets in repo: %w", err)
	}
	return nil
}

func (s *streetService) DeleteStreet(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrStreetNotFound
		}
		return fmt.Errorf("failed to delete street in repo: %w", err)
	}
	return nil
}
