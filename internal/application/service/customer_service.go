package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/pkg/apperror"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/mhdalhzau/warungpos/pkg/pagination"
)

// CustomerService handles customer and debt ledger operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	StoreID uuid.UUID
	Name    string
	Phone   *string
	Address *string
}

// CreateCustomer creates a new customer with a zero debt balance
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidInputError("Customer name is required")
	}

	customer := &entity.Customer{
		StoreID: input.StoreID,
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID, enforcing the store boundary
func (s *CustomerService) GetCustomer(ctx context.Context, id, storeID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.StoreID != storeID {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional search
func (s *CustomerService) ListCustomers(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, storeID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// UpdateCustomer updates a customer's contact details
func (s *CustomerService) UpdateCustomer(ctx context.Context, id, storeID uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id, storeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewInvalidInputError("Customer name cannot be empty")
		}
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id, storeID uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id, storeID); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// AddDebt records an unpaid amount against the customer's running balance
func (s *CustomerService) AddDebt(ctx context.Context, id, storeID uuid.UUID, amount money.Money) (*entity.Customer, error) {
	if amount <= 0 {
		return nil, apperror.NewInvalidInputError("Debt amount must be positive")
	}
	if _, err := s.GetCustomer(ctx, id, storeID); err != nil {
		return nil, err
	}
	if err := s.customerRepo.AddDebt(ctx, id, amount); err != nil {
		return nil, err
	}
	return s.GetCustomer(ctx, id, storeID)
}

// SettleDebt records a repayment. Paying more than the balance settles it to
// zero rather than flipping negative.
func (s *CustomerService) SettleDebt(ctx context.Context, id, storeID uuid.UUID, amount money.Money) (*entity.Customer, error) {
	if amount <= 0 {
		return nil, apperror.NewInvalidInputError("Repayment amount must be positive")
	}
	if _, err := s.GetCustomer(ctx, id, storeID); err != nil {
		return nil, err
	}
	if err := s.customerRepo.AddDebt(ctx, id, -amount); err != nil {
		return nil, err
	}
	return s.GetCustomer(ctx, id, storeID)
}
