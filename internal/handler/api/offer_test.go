//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campustix/internal/domain/offer"
	"campustix/internal/domain/user"
	"campustix/internal/handler/api"
	resdto "campustix/internal/handler/dto/response"
	"campustix/internal/pkg/errs"
	"campustix/internal/usecase/commands"
	"campustix/internal/usecase/queries"
	"campustix/tests/common/builder"
	"campustix/tests/common/httptest"
	commandsmock "campustix/tests/mock/commands"
	queriesmock "campustix/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	handler      *api.OfferHandler
	actorID      uuid.UUID
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.POST("/listings/:id/offers", authMiddleware, s.handler.Create)
	s.router.GET("/listings/:id/offers", authMiddleware, s.handler.ListByListing)
	s.router.GET("/offers", authMiddleware, s.handler.ListMine)
	s.router.GET("/offers/:id", authMiddleware, s.handler.Get)
	s.router.POST("/offers/:id/respond", authMiddleware, s.handler.Respond)
	s.router.POST("/offers/:id/accept", authMiddleware, s.handler.Accept)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

// ================================================================================
// TestRespond
// ================================================================================

func (s *OfferHandlerTestSuite) TestRespond() {
	view := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
		b.Status = "accepted"
	}).BuildView()
	url := "/offers/" + view.ID.String() + "/respond"

	s.Run("success: accept returns 200 with resolved offer", func() {
		s.mockCommands.EXPECT().
			Resolve(gomock.Any(), view.ID, s.actorID, offer.DecisionAccept).
			Return(&commands.ResolveOfferResult{OfferID: view.ID, Decision: offer.DecisionAccept, RejectedSiblings: 2, ListingSold: true}, nil).
			Times(1)
		s.mockQueries.EXPECT().GetResolved(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "accept"}, "bearer-token")

		var body resdto.ResolveOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Offer accepted", body.Message)
		s.Equal(view.ID.String(), body.Offer.ID)
		s.Equal("accepted", body.Offer.Status)
	})

	s.Run("success: reject returns 200", func() {
		rejected := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.ID = view.ID
			b.Status = "rejected"
		}).BuildView()

		s.mockCommands.EXPECT().
			Resolve(gomock.Any(), view.ID, s.actorID, offer.DecisionReject).
			Return(&commands.ResolveOfferResult{OfferID: view.ID, Decision: offer.DecisionReject}, nil).
			Times(1)
		s.mockQueries.EXPECT().GetResolved(gomock.Any(), view.ID).Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "reject"}, "bearer-token")

		var body resdto.ResolveOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Offer rejected", body.Message)
		s.Equal("rejected", body.Offer.Status)
	})

	s.Run("success: null buyer is preserved in response", func() {
		orphan := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.ID = view.ID
			b.Status = "accepted"
		}).BuildView()
		orphan.Buyer = nil

		s.mockCommands.EXPECT().
			Resolve(gomock.Any(), view.ID, s.actorID, offer.DecisionAccept).
			Return(&commands.ResolveOfferResult{OfferID: view.ID, Decision: offer.DecisionAccept}, nil).
			Times(1)
		s.mockQueries.EXPECT().GetResolved(gomock.Any(), view.ID).Return(orphan, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "accept"}, "bearer-token")

		var body resdto.ResolveOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.Offer.Buyer)
	})

	s.Run("error: missing auth returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "accept"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: invalid decision returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"response": "maybe"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: missing body returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	errorCases := []struct {
		name       string
		resolveErr error
		expectCode int
	}{
		{name: "offer not found returns 404", resolveErr: commands.ErrOfferNotFound, expectCode: http.StatusNotFound},
		{name: "listing gone returns 404", resolveErr: commands.ErrOfferListingGone, expectCode: http.StatusNotFound},
		{name: "non-owner returns 403", resolveErr: commands.ErrNotListingOwner, expectCode: http.StatusForbidden},
		{name: "already resolved returns 400", resolveErr: commands.ErrOfferNotPending, expectCode: http.StatusBadRequest},
		{name: "inactive listing returns 400", resolveErr: commands.ErrListingNotActive, expectCode: http.StatusBadRequest},
		{name: "unexpected failure returns 500", resolveErr: errs.New("db down"), expectCode: http.StatusInternalServerError},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().
				Resolve(gomock.Any(), view.ID, s.actorID, offer.DecisionAccept).
				Return(nil, tc.resolveErr).
				Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				map[string]any{"response": "accept"}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

// ================================================================================
// TestAccept
// ================================================================================

func (s *OfferHandlerTestSuite) TestAccept() {
	view := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
		b.Status = "accepted"
	}).BuildView()
	url := "/offers/" + view.ID.String() + "/accept"

	s.Run("success: accepts without a body", func() {
		s.mockCommands.EXPECT().
			Resolve(gomock.Any(), view.ID, s.actorID, offer.DecisionAccept).
			Return(&commands.ResolveOfferResult{OfferID: view.ID, Decision: offer.DecisionAccept}, nil).
			Times(1)
		s.mockQueries.EXPECT().GetResolved(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ResolveOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Offer accepted", body.Message)
	})

	s.Run("error: malformed offer id returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/not-a-uuid/accept", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OfferHandlerTestSuite) TestCreate() {
	b := builder.NewOfferBuilder()
	view := b.BuildView()
	url := "/listings/" + b.ListingID.String() + "/offers"
	reqBody := b.BuildCreateRequestMap()

	s.Run("success: returns 201 with created offer", func() {
		s.mockCommands.EXPECT().
			Propose(gomock.Any(), gomock.Any(), s.actorID).
			Return(&commands.ProposeOfferResult{OfferID: view.ID}, nil).
			Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
	})

	s.Run("error: zero quantity fails binding", func() {
		bad := b.BuildCreateRequestMap()
		bad["quantity"] = 0
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: duplicate pending offer returns 409", func() {
		s.mockCommands.EXPECT().
			Propose(gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, commands.ErrDuplicatePendingOffer).
			Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: own listing returns 400", func() {
		s.mockCommands.EXPECT().
			Propose(gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, commands.ErrOwnListingOffer).
			Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OfferHandlerTestSuite) TestGet() {
	view := builder.NewOfferBuilder().BuildView()
	url := "/offers/" + view.ID.String()

	s.Run("success: returns 200 for participant", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.BuyerID.String(), body.BuyerID)
	})

	s.Run("error: outsider returns 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).
			Return(nil, queries.ErrOfferAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: unknown offer returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).
			Return(nil, queries.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
