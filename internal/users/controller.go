package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookly/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateUser handles POST /api/v1/users
func (c *Controller) CreateUser(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	user, err := c.service.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "User created successfully", user, nil)
}

// GetUser handles GET /api/v1/users/:userId
func (c *Controller) GetUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	user, err := c.service.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User retrieved successfully", user, nil)
}

// GetAllUsers handles GET /api/v1/users
func (c *Controller) GetAllUsers(ctx *gin.Context) {
	users, err := c.service.GetAllUsers(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch users", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Users retrieved successfully", gin.H{
		"users": users,
		"count": len(users),
	}, nil)
}

// UpdateUser handles PUT /api/v1/users/:userId
func (c *Controller) UpdateUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	user, err := c.service.UpdateUser(ctx.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User updated successfully", user, nil)
}

// DeleteUser handles DELETE /api/v1/users/:userId
func (c *Controller) DeleteUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteUser(ctx.Request.Context(), userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User deleted successfully", nil, nil)
}
