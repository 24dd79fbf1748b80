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

// ProductService handles inventory operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	StoreID      uuid.UUID
	Name         string
	SKU          string
	SellingPrice money.Money
	Stock        int
	StockAlert   int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidInputError("Product name is required")
	}
	if input.SellingPrice < 0 {
		return nil, apperror.NewInvalidInputError("Selling price cannot be negative")
	}
	if input.Stock < 0 || input.StockAlert < 0 {
		return nil, apperror.NewInvalidInputError("Stock values cannot be negative")
	}

	product := &entity.Product{
		StoreID:      input.StoreID,
		Name:         input.Name,
		SKU:          input.SKU,
		SellingPrice: input.SellingPrice,
		Stock:        input.Stock,
		StockAlert:   input.StockAlert,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID, enforcing the store boundary
func (s *ProductService) GetProduct(ctx context.Context, id, storeID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.StoreID != storeID {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with pagination and optional name/SKU search
func (s *ProductService) ListProducts(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, storeID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name         *string
	SKU          *string
	SellingPrice *money.Money
	Stock        *int
	StockAlert   *int
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, id, storeID uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id, storeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewInvalidInputError("Product name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewInvalidInputError("Selling price cannot be negative")
		}
		product.SellingPrice = *input.SellingPrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewInvalidInputError("Stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.StockAlert != nil {
		if *input.StockAlert < 0 {
			return nil, apperror.NewInvalidInputError("Stock alert cannot be negative")
		}
		product.StockAlert = *input.StockAlert
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id, storeID uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id, storeID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListLowStock returns every product under its own stock alert threshold
func (s *ProductService) ListLowStock(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.ListBelowAlert(ctx, storeID)
}
