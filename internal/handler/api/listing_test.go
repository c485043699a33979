//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campustix/internal/domain/user"
	"campustix/internal/handler/api"
	resdto "campustix/internal/handler/dto/response"
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

type ListingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockListingCommands
	mockQueries  *queriesmock.MockListingQueries
	handler      *api.ListingHandler
	actorID      uuid.UUID
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	s.handler = api.NewListingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.GET("/listings", s.handler.List)
	s.router.GET("/listings/:id", s.handler.Get)
	s.router.POST("/listings", authMiddleware, s.handler.Create)
	s.router.GET("/listings/mine", authMiddleware, s.handler.ListMine)
	s.router.POST("/listings/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

func (s *ListingHandlerTestSuite) TestCreate() {
	b := builder.NewListingBuilder()
	view := b.BuildView()

	s.Run("success: returns 201 with created listing", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.actorID).
			Return(&commands.CreateListingResult{ListingID: view.ID}, nil).
			Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/listings",
			b.BuildCreateRequestMap(), "bearer-token")

		var body resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("active", body.Status)
	})

	s.Run("error: missing title fails binding", func() {
		bad := b.BuildCreateRequestMap()
		delete(bad, "title")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/listings", bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: missing auth returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/listings",
			b.BuildCreateRequestMap(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *ListingHandlerTestSuite) TestList() {
	s.Run("success: returns page with next cursor", func() {
		items := []*queries.ListingListItem{
			builder.NewListingBuilder().BuildListItem(),
			builder.NewListingBuilder().BuildListItem(),
		}
		next := &queries.Cursor{After: "opaque-cursor"}

		s.mockQueries.EXPECT().
			ListActive(gomock.Any(), gomock.Any(), gomock.Nil(), 2).
			Return(items, next, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings?limit=2", nil, "")

		var body struct {
			Listings []*resdto.ListingListItemResponse `json:"listings"`
			Next     string                            `json:"next"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Listings, 2)
		s.Equal("opaque-cursor", body.Next)
	})

	s.Run("error: invalid cursor returns 400", func() {
		s.mockQueries.EXPECT().
			ListActive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: malformed event_after returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings?event_after=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ListingHandlerTestSuite) TestCancel() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/cancel"

	s.Run("success: returns rejected offer count", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), listingID, s.actorID).
			Return(&commands.CancelListingResult{RejectedOffers: 3}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body struct {
			Message        string `json:"message"`
			RejectedOffers int64  `json:"rejected_offers"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.RejectedOffers)
	})

	s.Run("error: non-owner returns 403", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), listingID, s.actorID).
			Return(nil, commands.ErrNotListingOwner).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: already terminal returns 400", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), listingID, s.actorID).
			Return(nil, commands.ErrListingNotActive).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
