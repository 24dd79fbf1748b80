package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/response"
)

// StoreAccessMiddleware resolves the :storeID path parameter and verifies
// the authenticated user owns that store before any store-scoped handler
// runs. On success the store ID and store are placed in the Gin context.
func StoreAccessMiddleware(storeRepo repository.StoreRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID, err := uuid.Parse(c.Param("storeID"))
		if err != nil {
			response.BadRequest(c, "Invalid store ID")
			c.Abort()
			return
		}

		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(uuid.UUID)
		if !exists || !ok {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		store, err := storeRepo.GetByID(c.Request.Context(), storeID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if store == nil || store.UserID != userID {
			response.ErrorWithCode(c, 404, "Store not found")
			c.Abort()
			return
		}

		c.Set("store_id", store.ID)
		c.Set("store", store)

		c.Next()
	}
}
