package addressbook

import (
	"context"
	"errors"
	"fmt"

	"checkout-address-verify/internal/models"
)

// ServiceInterface defines address-book business logic. Every operation is
// scoped to the calling user; acting on another user's address yields
// models.ErrNotFound rather than leaking its existence.
type ServiceInterface interface {
	ListByType(ctx context.Context, userID, addressType string) ([]models.SavedAddress, error)
	GetDefault(ctx context.Context, userID, addressType string) (*models.SavedAddress, error)
	Save(ctx context.Context, userID string, req models.SaveAddressRequest) (*models.SavedAddress, error)
	Update(ctx context.Context, userID string, addressID int64, req models.UpdateAddressRequest) (*models.SavedAddress, error)
	Delete(ctx context.Context, userID string, addressID int64) error
	SetDefault(ctx context.Context, userID string, addressID int64) (*models.SavedAddress, error)
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

func (s *Service) ListByType(ctx context.Context, userID, addressType string) ([]models.SavedAddress, error) {
	if addressType == "" {
		addressType = models.AddressTypeShipping
	}
	return s.repo.ListByType(ctx, userID, addressType)
}

func (s *Service) GetDefault(ctx context.Context, userID, addressType string) (*models.SavedAddress, error) {
	if addressType == "" {
		addressType = models.AddressTypeShipping
	}
	return s.repo.FindDefault(ctx, userID, addressType)
}

func (s *Service) Save(ctx context.Context, userID string, req models.SaveAddressRequest) (*models.SavedAddress, error) {
	// First address of a type becomes the default regardless of the flag.
	existing, err := s.repo.ListByType(ctx, userID, req.AddressType)
	if err != nil {
		return nil, fmt.Errorf("service.Save: %w", err)
	}
	isDefault := req.IsDefault || len(existing) == 0

	if isDefault {
		if err := s.repo.UnsetDefaults(ctx, userID, req.AddressType); err != nil {
			return nil, fmt.Errorf("service.Save: %w", err)
		}
	}

	addr := &models.SavedAddress{
		UserID:       userID,
		AddressType:  req.AddressType,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		IsDefault:    isDefault,
		AddressName:  req.AddressName,
	}
	created, err := s.repo.Create(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("service.Save: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID string, addressID int64, req models.UpdateAddressRequest) (*models.SavedAddress, error) {
	current, err := s.repo.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		return nil, models.ErrNotFound
	}

	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.AddressLine1 != nil {
		current.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		current.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		current.City = *req.City
	}
	if req.PostalCode != nil {
		current.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		current.Country = *req.Country
	}
	if req.AddressName != nil {
		current.AddressName = *req.AddressName
	}
	if req.IsDefault != nil && *req.IsDefault && !current.IsDefault {
		if err := s.repo.UnsetDefaults(ctx, userID, current.AddressType); err != nil {
			return nil, fmt.Errorf("service.Update: %w", err)
		}
		current.IsDefault = true
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("service.Update: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID string, addressID int64) error {
	return s.repo.Delete(ctx, addressID, userID)
}

func (s *Service) SetDefault(ctx context.Context, userID string, addressID int64) (*models.SavedAddress, error) {
	current, err := s.repo.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		return nil, models.ErrNotFound
	}

	if err := s.repo.UnsetDefaults(ctx, userID, current.AddressType); err != nil {
		return nil, fmt.Errorf("service.SetDefault: %w", err)
	}
	if err := s.repo.SetDefault(ctx, addressID, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service.SetDefault: %w", err)
	}
	current.IsDefault = true
	return current, nil
}
