//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"dealdesk/internal/handler/api"
	"dealdesk/internal/usecase/queries"
	"dealdesk/tests/common/httptest"
	queriesmock "dealdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DealHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDealQueries
	handler     *api.DealHandler
}

func (s *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDealQueries(s.mockCtrl)
	s.handler = api.NewDealHandler(s.mockQueries)

	s.router.GET("/deals", s.handler.List)
	s.router.GET("/deals/:id", s.handler.Get)
}

func (s *DealHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDealHandlerSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}

func (s *DealHandlerTestSuite) TestList() {
	s.Run("success: returns accepted deals, newest first", func() {
		items := []*queries.DealListItem{
			{ID: uuid.New(), BusinessName: "Blue Bottle Cafe", DealTitle: "Spring Special", SubmittedAt: time.Now()},
			{ID: uuid.New(), BusinessName: "Corner Bakery", DealTitle: "Morning Bundle", SubmittedAt: time.Now().Add(-time.Hour)},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals", nil, "token")

		var response []*queries.DealListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Blue Bottle Cafe", response[0].BusinessName)
	})

	s.Run("error: returns 500 on read failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *DealHandlerTestSuite) TestGet() {
	dealID := uuid.New()
	url := "/deals/" + dealID.String()

	s.Run("success: returns the accepted deal", func() {
		view := &queries.DealView{ID: dealID, BusinessName: "Blue Bottle Cafe", DealTitle: "Spring Special"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), dealID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response queries.DealView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(dealID, response.ID)
	})

	s.Run("error: 400 on malformed deal id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid deal ID format")
	})

	s.Run("error: 404 when the deal does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), dealID).Return(nil, queries.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}
