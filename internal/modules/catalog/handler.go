package catalog

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
	rg.GET("/genres", h.ListGenres)
	rg.GET("/genres/:id", h.GetGenre)
	rg.GET("/mpa", h.ListMpa)
	rg.GET("/mpa/:id", h.GetMpa)
	rg.POST("/films/:id/genres/:genreId", h.AddGenreToFilm)
	rg.DELETE("/films/:id/genres/:genreId", h.RemoveGenreFromFilm)
}

func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.service.ListGenres(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, genres)
}

func (h *Handler) GetGenre(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	genre, err := h.service.GetGenre(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, genre)
}

func (h *Handler) ListMpa(c *gin.Context) {
	ratings, err := h.service.ListMpa(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ratings)
}

func (h *Handler) GetMpa(c *gin.Context) {
	id, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	rating, err := h.service.GetMpa(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rating)
}

func (h *Handler) AddGenreToFilm(c *gin.Context) {
	filmID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	genreID, ok := response.PathID(c, "genreId")
	if !ok {
		return
	}
	if err := h.service.AddGenreToFilm(c.Request.Context(), filmID, genreID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) RemoveGenreFromFilm(c *gin.Context) {
	filmID, ok := response.PathID(c, "id")
	if !ok {
		return
	}
	genreID, ok := response.PathID(c, "genreId")
	if !ok {
		return
	}
	removed, err := h.service.RemoveGenreFromFilm(c.Request.Context(), filmID, genreID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": removed})
}
