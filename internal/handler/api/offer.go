package api

import (
	"errors"
	"net/http"
	"strconv"

	"campustix/internal/domain/offer"
	reqdto "campustix/internal/handler/dto/request"
	resdto "campustix/internal/handler/dto/response"
	"campustix/internal/handler/httperr"
	"campustix/internal/handler/middleware"
	"campustix/internal/usecase/commands"
	"campustix/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Make an offer
// @Description Make an offer on an active listing
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.CreateOfferRequest true "Offer terms"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Propose(c.Request.Context(), commands.ProposeOfferRequest{
		ListingID:  listingID,
		Quantity:   req.Quantity,
		PriceCents: req.PriceCents,
	}, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		case errors.Is(err, commands.ErrOwnListingOffer):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot make an offer on your own listing", nil)
		case errors.Is(err, commands.ErrListingNotActive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Listing is not active", nil)
		case errors.Is(err, commands.ErrQuantityExceedsAvailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity exceeds available tickets", nil)
		case errors.Is(err, commands.ErrDuplicatePendingOffer):
			httperr.AbortWithError(c, http.StatusConflict, err, "You already have a pending offer on this listing", nil)
		case errors.Is(err, offer.ErrInvalidQuantity), errors.Is(err, offer.ErrInvalidPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer terms", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create offer", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.OfferID, buyerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOfferView(view))
}

// @Summary Respond to an offer
// @Description Accept or reject a pending offer as the listing owner
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.RespondOfferRequest true "Decision"
// @Success 200 {object} resdto.ResolveOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/respond [post]
func (h *OfferHandler) Respond(c *gin.Context) {
	var req reqdto.RespondOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	decision, err := offer.NewDecision(req.Response)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid decision", nil)
		return
	}
	h.resolve(c, decision)
}

// @Summary Accept an offer
// @Description Accept a pending offer as the listing owner
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.ResolveOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/accept [post]
func (h *OfferHandler) Accept(c *gin.Context) {
	h.resolve(c, offer.DecisionAccept)
}

func (h *OfferHandler) resolve(c *gin.Context, decision offer.Decision) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		return
	}

	result, err := h.cmds.Resolve(c.Request.Context(), offerID, actorID, decision)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		case errors.Is(err, commands.ErrOfferListingGone):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing for offer not found", nil)
		case errors.Is(err, commands.ErrNotListingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the listing owner can respond to offers", nil)
		case errors.Is(err, commands.ErrOfferNotPending):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Offer has already been resolved", nil)
		case errors.Is(err, commands.ErrListingNotActive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Listing is no longer active", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to resolve offer", nil)
		}
		return
	}

	view, err := h.q.GetResolved(c.Request.Context(), result.OfferID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}

	msg := "Offer rejected"
	if result.Decision == offer.DecisionAccept {
		msg = "Offer accepted"
	}
	c.JSON(http.StatusOK, resdto.ResolveOfferResponse{
		Offer:   resdto.FromOfferView(view),
		Message: msg,
	})
}

// @Summary Get offer
// @Description Get an offer; restricted to the buyer or the listing owner
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		case errors.Is(err, queries.ErrOfferAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to view this offer", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary List my offers
// @Description List offers made by the authenticated user
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items" default(20)
// @Success 200 {array} resdto.OfferListItemResponse
// @Failure 401 {object} httperr.Response
// @Router /offers [get]
func (h *OfferHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.q.ListByBuyer(c.Request.Context(), buyerID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferList(items))
}

// @Summary List offers on a listing
// @Description List offers received on a listing; restricted to the listing owner
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param limit query int false "Max items" default(20)
// @Success 200 {array} resdto.OfferListItemResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/offers [get]
func (h *OfferHandler) ListByListing(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.q.ListByListing(c.Request.Context(), listingID, actorID, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		case errors.Is(err, queries.ErrOfferAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to view offers on this listing", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list offers", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferList(items))
}
