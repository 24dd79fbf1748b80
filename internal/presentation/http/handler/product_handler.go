package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/application/service"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/request"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/response"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/mhdalhzau/warungpos/pkg/pagination"
)

// ProductHandler handles inventory HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		StoreID:      *storeID,
		Name:         req.Name,
		SKU:          req.SKU,
		SellingPrice: money.Money(req.SellingPrice),
		Stock:        req.Stock,
		StockAlert:   req.StockAlert,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	result, err := h.productService.ListProducts(c.Request.Context(), *storeID, params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles retrieving one product
func (h *ProductHandler) Get(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id, *storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateProductInput{
		Name:       req.Name,
		SKU:        req.SKU,
		Stock:      req.Stock,
		StockAlert: req.StockAlert,
	}
	if req.SellingPrice != nil {
		price := money.Money(*req.SellingPrice)
		input.SellingPrice = &price
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, *storeID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id, *storeID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock handles listing products under their stock alert threshold
func (h *ProductHandler) LowStock(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	products, err := h.productService.ListLowStock(c.Request.Context(), *storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}
