package film

import (
	"net/http"
	"strconv"

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
	rg.GET("/films", h.ListFilms)
	rg.GET("/films/popular", h.GetPopular)
	rg.GET("/films/:id", h.GetFilm)
	rg.POST("/films", h.CreateFilm)
	rg.PUT("/films/:id", h.UpdateFilm)
	rg.DELETE("/films/:id", h.DeleteFilm)
	rg.PUT("/films/:id/like/:userId", h.AddLike)
	rg.DELETE("/films/:id/like/:userId", h.RemoveLike)
	rg.GET("/films/:id/likes", h.GetLikeCount)
}

func (h *Handler) ListFilms(c *gin.Context) {
	films, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}

func (h *Handler) GetFilm(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	film, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, film)
}

func (h *Handler) CreateFilm(c *gin.Context) {
	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	f, err := req.toDomain(0)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), f)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) UpdateFilm(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}

	var req FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	f, err := req.toDomain(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), f)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) DeleteFilm(c *gin.Context) {
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

func (h *Handler) AddLike(c *gin.Context) {
	filmID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	userID, ok := response.PathID(c, "userId")
	if !ok {
		return
	}
	if err := h.service.AddLike(c.Request.Context(), filmID, userID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) RemoveLike(c *gin.Context) {
	filmID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	userID, ok := response.PathID(c, "userId")
	if !ok {
		return
	}
	removed, err := h.service.RemoveLike(c.Request.Context(), filmID, userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": removed})
}

func (h *Handler) GetLikeCount(c *gin.Context) {
	filmID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	count, err := h.service.LikeCount(c.Request.Context(), filmID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes": count})
}

func (h *Handler) GetPopular(c *gin.Context) {
	count := 10
	if raw := c.Query("count"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "count must be an integer")
			return
		}
		count = val
	}

	films, err := h.service.GetTop(c.Request.Context(), count)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, films)
}
