package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCashierID extracts the cashier ID from the Gin context
func GetCashierID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get("cashier_id")
	if !exists {
		return nil
	}
	cashierID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &cashierID
}

// GetBranchID extracts the branch ID from the Gin context
func GetBranchID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get("branch_id")
	if !exists {
		return nil
	}
	branchID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &branchID
}

// GetCashierRole extracts the cashier role from the Gin context
func GetCashierRole(c *gin.Context) string {
	role, exists := c.Get("cashier_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the authenticated cashier has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetCashierRole(c) == "admin"
}
