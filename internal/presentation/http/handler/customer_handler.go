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

// CustomerHandler handles customer and debt HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		StoreID: *storeID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	result, err := h.customerService.ListCustomers(c.Request.Context(), *storeID, params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles retrieving one customer
func (h *CustomerHandler) Get(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id, *storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, *storeID, &service.UpdateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id, *storeID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddDebt books an unpaid amount onto the customer's balance
func (h *CustomerHandler) AddDebt(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.DebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.AddDebt(c.Request.Context(), id, *storeID, money.Money(req.Amount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt recorded successfully", customer)
}

// SettleDebt books a repayment against the customer's balance
func (h *CustomerHandler) SettleDebt(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.DebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.SettleDebt(c.Request.Context(), id, *storeID, money.Money(req.Amount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Repayment recorded successfully", customer)
}
