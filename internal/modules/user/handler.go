package user

import (
	"net/http"

	"filmoteka/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.GET("/users/:id", h.GetUser)
	rg.POST("/users", h.CreateUser)
	rg.PUT("/users/:id", h.UpdateUser)
	rg.DELETE("/users/:id", h.DeleteUser)
	rg.PUT("/users/:id/friends/:friendId", h.AddFriend)
	rg.DELETE("/users/:id/friends/:friendId", h.RemoveFriend)
	rg.GET("/users/:id/friends", h.GetFriends)
	rg.GET("/users/:id/friends/common/:otherId", h.GetCommonFriends)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	u, err := req.toDomain(0)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), u)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	u, err := req.toDomain(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), u)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) AddFriend(c *gin.Context) {
	userID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := response.PathID(c, "friendId")
	if !ok {
		return
	}
	if err := h.service.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) RemoveFriend(c *gin.Context) {
	userID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := response.PathID(c, "friendId")
	if !ok {
		return
	}
	removed, err := h.service.RemoveFriend(c.Request.Context(), userID, friendID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": removed})
}

func (h *Handler) GetFriends(c *gin.Context) {
	userID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	friends, err := h.service.GetFriends(c.Request.Context(), userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, friends)
}

func (h *Handler) GetCommonFriends(c *gin.Context) {
	userID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := response.PathID(c, "otherId")
	if !ok {
		return
	}
	friends, err := h.service.GetCommonFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, friends)
}
