package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"campustix/internal/domain/listing"
	reqdto "campustix/internal/handler/dto/request"
	resdto "campustix/internal/handler/dto/response"
	"campustix/internal/handler/httperr"
	"campustix/internal/handler/middleware"
	"campustix/internal/usecase/commands"
	"campustix/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Description Create a ticket listing for an upcoming event
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing details"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), commands.CreateListingRequest{
		Title:      req.Title,
		EventName:  req.EventName,
		EventDate:  req.EventDate,
		PriceCents: req.PriceCents,
		Quantity:   req.Quantity,
	}, sellerID)
	if err != nil {
		switch {
		case errors.Is(err, listing.ErrEmptyTitle),
			errors.Is(err, listing.ErrTitleTooLong),
			errors.Is(err, listing.ErrEmptyEventName),
			errors.Is(err, listing.ErrEventInPast),
			errors.Is(err, listing.ErrInvalidPrice),
			errors.Is(err, listing.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create listing", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ListingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListingView(view))
}

// @Summary Browse listings
// @Description List active listings, newest first, with keyset pagination
// @Tags listings
// @Produce json
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Max items" default(20)
// @Param event_after query string false "Only events after this RFC3339 time"
// @Param max_price_cents query int false "Maximum asking price in cents"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var filters queries.ListingFilters
	if raw := c.Query("event_after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event_after", nil)
			return
		}
		filters.EventAfter = &t
	}
	if raw := c.Query("max_price_cents"); raw != "" {
		p, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || p <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_price_cents", nil)
			return
		}
		filters.MaxPriceCents = &p
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListActive(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list listings", nil)
		return
	}

	body := gin.H{"listings": resdto.FromListingList(items)}
	if next != nil {
		body["next"] = next.After
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Get listing
// @Description Get a listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary List my listings
// @Description List listings posted by the authenticated user
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items" default(20)
// @Success 200 {array} resdto.ListingListItemResponse
// @Failure 401 {object} httperr.Response
// @Router /listings/mine [get]
func (h *ListingHandler) ListMine(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.q.ListBySeller(c.Request.Context(), sellerID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list listings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingList(items))
}

// @Summary Cancel listing
// @Description Cancel an active listing; outstanding pending offers are rejected
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/cancel [post]
func (h *ListingHandler) Cancel(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		case errors.Is(err, commands.ErrNotListingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the listing owner can cancel it", nil)
		case errors.Is(err, commands.ErrListingNotActive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Listing is not active", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel listing", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Listing cancelled",
		"rejected_offers": result.RejectedOffers,
	})
}
