package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/pkg/apperror"
	"github.com/mhdalhzau/warungpos/pkg/money"
)

// StoreService handles store profile and branding operations
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// CreateStoreInput represents the create store input
type CreateStoreInput struct {
	UserID   uuid.UUID
	Name     string
	Phone    string
	Address  string
	LogoURL  *string
	Timezone string
	Currency string
	Locale   string
}

// CreateStore creates a new store owned by the given user
func (s *StoreService) CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidInputError("Store name is required")
	}

	store := &entity.Store{
		UserID:   input.UserID,
		Name:     input.Name,
		Phone:    input.Phone,
		Address:  input.Address,
		LogoURL:  input.LogoURL,
		Timezone: input.Timezone,
		Currency: input.Currency,
		Locale:   input.Locale,
	}
	if store.Timezone == "" {
		store.Timezone = "Asia/Jakarta"
	}
	if store.Currency == "" {
		store.Currency = "IDR"
	}
	if store.Locale == "" {
		store.Locale = money.DefaultLocale
	}
	if _, err := time.LoadLocation(store.Timezone); err != nil {
		return nil, apperror.NewInvalidInputError("Unknown timezone: " + store.Timezone)
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetStore retrieves a store by ID, enforcing ownership
func (s *StoreService) GetStore(ctx context.Context, id, userID uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	if store.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return store, nil
}

// ListStores lists all stores owned by the user
func (s *StoreService) ListStores(ctx context.Context, userID uuid.UUID) ([]entity.Store, error) {
	return s.storeRepo.ListByUser(ctx, userID)
}

// UpdateStoreInput represents the update store input. Nil fields are left
// unchanged so a branding edit can touch a single field.
type UpdateStoreInput struct {
	Name     *string
	Phone    *string
	Address  *string
	LogoURL  *string
	Timezone *string
	Currency *string
	Locale   *string
}

// UpdateStore updates a store's profile and branding
func (s *StoreService) UpdateStore(ctx context.Context, id, userID uuid.UUID, input *UpdateStoreInput) (*entity.Store, error) {
	store, err := s.GetStore(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewInvalidInputError("Store name cannot be empty")
		}
		store.Name = *input.Name
	}
	if input.Phone != nil {
		store.Phone = *input.Phone
	}
	if input.Address != nil {
		store.Address = *input.Address
	}
	if input.LogoURL != nil {
		store.LogoURL = input.LogoURL
	}
	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			return nil, apperror.NewInvalidInputError("Unknown timezone: " + *input.Timezone)
		}
		store.Timezone = *input.Timezone
	}
	if input.Currency != nil {
		store.Currency = *input.Currency
	}
	if input.Locale != nil {
		store.Locale = *input.Locale
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore soft-deletes a store
func (s *StoreService) DeleteStore(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.GetStore(ctx, id, userID); err != nil {
		return err
	}
	return s.storeRepo.Delete(ctx, id)
}
