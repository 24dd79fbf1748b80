package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mhdalhzau/warungpos/internal/application/service"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/request"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/response"
)

// StoreHandler handles store profile HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Create handles creating a store
func (h *StoreHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &service.CreateStoreInput{
		UserID:   *userID,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		LogoURL:  req.LogoURL,
		Timezone: req.Timezone,
		Currency: req.Currency,
		Locale:   req.Locale,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store created successfully", store)
}

// List handles listing the user's stores
func (h *StoreHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	stores, err := h.storeService.ListStores(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stores retrieved successfully", stores)
}

// Get handles retrieving one store
func (h *StoreHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	storeID := GetStoreID(c)
	if userID == nil || storeID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), *storeID, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store retrieved successfully", store)
}

// Update handles updating a store's profile and branding
func (h *StoreHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	storeID := GetStoreID(c)
	if userID == nil || storeID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), *storeID, *userID, &service.UpdateStoreInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		LogoURL:  req.LogoURL,
		Timezone: req.Timezone,
		Currency: req.Currency,
		Locale:   req.Locale,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store updated successfully", store)
}

// Delete handles deleting a store
func (h *StoreHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	storeID := GetStoreID(c)
	if userID == nil || storeID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), *storeID, *userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
