package api

import (
	"errors"
	"net/http"

	"dealdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DealHandler struct {
	dealQueries queries.DealQueries
}

func NewDealHandler(dealQueries queries.DealQueries) *DealHandler {
	return &DealHandler{
		dealQueries: dealQueries,
	}
}

// @Summary List accepted deals
// @Description List all accepted deals, newest first
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.DealListItem
// @Failure 401 {object} map[string]string
// @Router /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	items, err := h.dealQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get accepted deal
// @Description Get one accepted deal by ID
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} queries.DealView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid deal ID format",
		})
		return
	}

	view, err := h.dealQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDealNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Deal not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
