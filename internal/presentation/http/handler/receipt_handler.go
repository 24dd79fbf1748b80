package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/application/service"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/request"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt composition and printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

func bindOverrides(c *gin.Context) (*entity.ReceiptOverrides, bool) {
	if c.Request.ContentLength == 0 {
		return nil, true
	}
	var req request.ReceiptOverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}
	return &entity.ReceiptOverrides{
		CustomAddress: req.CustomAddress,
		CustomPhone:   req.CustomPhone,
		CustomContent: req.CustomContent,
	}, true
}

// Compose returns the fully resolved receipt document without printing it
func (h *ReceiptHandler) Compose(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	overrides, ok := bindOverrides(c)
	if !ok {
		return
	}

	doc, err := h.receiptService.Compose(c.Request.Context(), *storeID, txnID, overrides)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt composed successfully", doc)
}

// Print composes the receipt and sends it to the printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	overrides, ok := bindOverrides(c)
	if !ok {
		return
	}

	doc, err := h.receiptService.Print(c.Request.Context(), *storeID, txnID, overrides)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", doc)
}

// TestPrint prints a fixed sample receipt
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	doc, err := h.receiptService.TestPrint(c.Request.Context(), *storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test receipt printed successfully", doc)
}

// PrinterStatus reports printer connectivity
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", gin.H{
		"connected": h.receiptService.Status(),
	})
}
