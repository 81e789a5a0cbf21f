package request

import (
	"strings"

	"respresso/internal/domain/entities"
)

type UpdateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

func (r UpdateUserRequest) ResolveRole() entities.UserRole {
	return entities.UserRole(strings.ToUpper(strings.TrimSpace(r.Role)))
}
