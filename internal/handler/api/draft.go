package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "dealdesk/internal/handler/dto/request"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	draftCommands commands.DraftCommands
	ownerCommands commands.OwnerCommands
	draftQueries  queries.DraftQueries
}

func NewDraftHandler(
	draftCommands commands.DraftCommands,
	ownerCommands commands.OwnerCommands,
	draftQueries queries.DraftQueries,
) *DraftHandler {
	return &DraftHandler{
		draftCommands: draftCommands,
		ownerCommands: ownerCommands,
		draftQueries:  draftQueries,
	}
}

// @Summary Open draft
// @Description Open a new deal draft with default values
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 201 {object} queries.DraftView
// @Failure 401 {object} map[string]string
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	view, err := h.draftCommands.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get draft
// @Description Get a draft with its resolved policy, tiers and owner panel
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	view, err := h.draftQueries.Get(c.Request.Context(), id)
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Edit draft fields
// @Description Apply a batch of field edits; rejected values are reported per field
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SetFieldsRequest true "Field edits"
// @Success 200 {object} resdto.DraftEditResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/fields [patch]
func (h *DraftHandler) SetFields(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.SetFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, fieldErrors, err := h.draftCommands.SetFields(c.Request.Context(), id, req.Fields)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown field name",
			})
		case errors.Is(err, commands.ErrFieldNotEditable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Field is not directly editable",
			})
		default:
			h.respondDraftError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewDraftEditResponse(view, fieldErrors))
}

// @Summary Set tier value
// @Description Set the stored value of one pricing tier
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param tierId path string true "Tier ID"
// @Param request body reqdto.SetTierValueRequest true "Tier value"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/tiers/{tierId} [put]
func (h *DraftHandler) SetTierValue(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.SetTierValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.draftCommands.SetTierValue(c.Request.Context(), id, c.Param("tierId"), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownTier):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown tier",
			})
		default:
			h.respondDraftError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Toggle tiered pricing
// @Description Enable or disable tier participation; stored tier values survive the toggle
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SetTieredPricingRequest true "Toggle"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/tiered-pricing [put]
func (h *DraftHandler) SetTieredPricing(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.SetTieredPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.draftCommands.SetTieredPricing(c.Request.Context(), id, *req.Enabled)
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add image
// @Description Attach an image reference to the draft
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.AddImageRequest true "Image reference"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /drafts/{id}/images [post]
func (h *DraftHandler) AddImage(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.draftCommands.AddImage(c.Request.Context(), id, req.Ref)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTooManyImages):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Image limit reached",
			})
		default:
			h.respondDraftError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove image
// @Description Remove one image reference by position
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param index path int true "Image position"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/images/{index} [delete]
func (h *DraftHandler) RemoveImage(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid image index format",
		})
		return
	}

	view, err := h.draftCommands.RemoveImage(c.Request.Context(), id, index)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrImageIndexInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Image index out of range",
			})
		default:
			h.respondDraftError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Search deal owners
// @Description Resolve owner candidates for the draft; the newest query wins
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.OwnerSearchRequest true "Search query"
// @Success 200 {object} queries.OwnerPanelView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/owner/search [post]
func (h *DraftHandler) SearchOwner(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.OwnerSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	panel, err := h.ownerCommands.Search(c.Request.Context(), id, req.Query)
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, panel)
}

// @Summary Select deal owner
// @Description Select one candidate from the current search results
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.OwnerSelectRequest true "Candidate"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /drafts/{id}/owner [put]
func (h *DraftHandler) SelectOwner(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req reqdto.OwnerSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ownerCommands.Select(c.Request.Context(), id, req.CandidateID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCandidateNotInResults):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Candidate is not in the current results",
			})
		default:
			h.respondDraftError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Clear deal owner
// @Description Clear the owner selection and reset the lookup panel
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/owner [delete]
func (h *DraftHandler) ClearOwner(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	view, err := h.ownerCommands.Clear(c.Request.Context(), id)
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get owner panel
// @Description Get the current state of the owner lookup panel
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} queries.OwnerPanelView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id}/owner [get]
func (h *DraftHandler) GetOwnerPanel(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	panel, err := h.draftQueries.OwnerPanel(c.Request.Context(), id)
	if err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, panel)
}

// @Summary Submit draft
// @Description Validate the whole draft and persist it as an accepted deal
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 201 {object} queries.DealView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} resdto.ValidationErrorResponse
// @Router /drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	dealView, result, err := h.draftCommands.Submit(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Draft not found",
			})
		case errors.Is(err, commands.ErrPersistenceFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to persist the accepted deal",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if result != nil && !result.IsValid() {
		c.JSON(http.StatusUnprocessableEntity, resdto.FromValidationResult(result))
		return
	}

	c.JSON(http.StatusCreated, dealView)
}

// @Summary Cancel draft
// @Description Discard the draft without persisting anything
// @Tags drafts
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Cancel(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	if err := h.draftCommands.Cancel(c.Request.Context(), id); err != nil {
		h.respondDraftError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid draft ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *DraftHandler) respondDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDraftNotFound), errors.Is(err, queries.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Draft not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
