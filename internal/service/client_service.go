package service

import (
	"context"
	"errors"
	"fmt"

	"delivery_tracker/internal/clientlist"
	"delivery_tracker/internal/model"
	"delivery_tracker/internal/repository"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNoteRequired   = errors.New("a note is required when marking a client undelivered")
)

// ClientService defines operations for client records and their
// render-ready listing.
type ClientService interface {
	CreateClient(ctx context.Context, req model.CreateClientRequest) (*model.Client, error)
	GetClientByID(ctx context.Context, id int64) (*model.Client, error)
	ListClients(ctx context.Context, filters model.ClientFilters) ([]model.Client, error)
	UpdateClient(ctx context.Context, id int64, req model.UpdateClientRequest) (*model.Client, error)
	UpdateStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) (*model.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

type clientService struct {
	repo       repository.ClientRepository
	streetRepo repository.StreetRepository
	bus        *clientlist.Bus
}

// NewClientService creates a new ClientService. Confirmed status
// changes are published on bus so other in-process views can drop the
// record from stale scopes.
func NewClientService(repo repository.ClientRepository, streetRepo repository.StreetRepository, bus *clientlist.Bus) ClientService {
	return &clientService{repo: repo, streetRepo: streetRepo, bus: bus}
}

func (s *clientService) CreateClient(ctx context.Context, req model.CreateClientRequest) (*model.Client, error) {
	client := &model.Client{
		FullName: req.FullName,
		Address:  req.Address,
		Phone:    req.Phone,
		Status:   model.StatusPending, // every client starts pending
		Note:     req.Note,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client in repo: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id int64) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// ListClients fetches the status scope from the store and runs the list
// pipeline over it: search/address filtering, then street-reference
// ordering.
func (s *clientService) ListClients(ctx context.Context, filters model.ClientFilters) ([]model.Client, error) {
	if filters.Status != nil && !model.ValidStatus(*filters.Status) {
		return nil, ErrInvalidStatus
	}
	clients, err := s.repo.FindAll(ctx, filters.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients from repo: %w", err)
	}
	streets, err := s.streetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load street references: %w", err)
	}
	return clientlist.Apply(clients, clientlist.Filter{Search: filters.Search, Address: filters.Address}, streets), nil
}

func (s *clientService) UpdateClient(ctx context.Context, id int64, req model.UpdateClientRequest) (*model.Client, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}
	if existing == nil {
		return nil, ErrClientNotFound
	}

	// Apply updates
	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Note != nil { // handles setting to ""
		existing.Note = req.Note
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repo: %w", err)
	}
	return existing, nil
}

// UpdateStatus overwrites the client's status and note. Marking a
// client undelivered without a reason is rejected; the prior
// status/note is destroyed either way.
func (s *clientService) UpdateStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) (*model.Client, error) {
	if !model.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	if req.Status == model.StatusUndelivered && (req.Note == nil || *req.Note == "") {
		return nil, ErrNoteRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for status update: %w", err)
	}
	if existing == nil {
		return nil, ErrClientNotFound
	}
	oldStatus := existing.Status

	updated, err := s.repo.UpdateStatus(ctx, id, req.Status, req.Note)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client status in repo: %w", err)
	}

	if s.bus != nil && oldStatus != updated.Status {
		s.bus.Publish(clientlist.StatusChange{
			ClientID:  updated.ID,
			OldStatus: oldStatus,
			NewStatus: updated.Status,
		})
	}
	return updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client in repo: %w", err)
	}
	return nil
}
