package middleware

import (
	"net/http"

	"rikumates/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ExtractUserID re-validates that AuthMiddleware left a usable user id behind
// and pins it under a typed key, so downstream handlers can read it without
// repeating the type assertion.
func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, "Authentication is required")
			ctx.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "Authentication is required")
			ctx.Abort()
			return
		}

		ctx.Set("user_id_validated", userIDStr)
		ctx.Next()
	}
}
