package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wekesadev/sokopos-api/internal/presentation/http/dto/response"
	"github.com/wekesadev/sokopos-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set cashier info in context
		c.Set("cashier_id", claims.CashierID)
		c.Set("branch_id", claims.BranchID)
		c.Set("cashier_email", claims.Email)
		c.Set("cashier_role", claims.Role)

		c.Next()
	}
}

// RequireAdmin restricts a route to admin cashiers
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("cashier_role")
		if !exists || role != "admin" {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
