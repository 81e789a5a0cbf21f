package request

import (
	"strings"

	"respresso/internal/domain/entities"
)

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (r RegisterRequest) ResolveRole() entities.UserRole {
	return entities.UserRole(strings.ToUpper(strings.TrimSpace(r.Role)))
}
