//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/handler/api"
	reqdto "dealdesk/internal/handler/dto/request"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/infra/ownerdir"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"
	"dealdesk/tests/common/builder"
	"dealdesk/tests/common/httptest"
	"dealdesk/tests/common/testutil"
	commandsmock "dealdesk/tests/mock/commands"
	queriesmock "dealdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockDraftCommands *commandsmock.MockDraftCommands
	mockOwnerCommands *commandsmock.MockOwnerCommands
	mockDraftQueries  *queriesmock.MockDraftQueries
	handler           *api.DraftHandler

	draftID uuid.UUID
	view    *queries.DraftView
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDraftCommands = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockOwnerCommands = commandsmock.NewMockOwnerCommands(s.mockCtrl)
	s.mockDraftQueries = queriesmock.NewMockDraftQueries(s.mockCtrl)
	s.handler = api.NewDraftHandler(s.mockDraftCommands, s.mockOwnerCommands, s.mockDraftQueries)

	s.router.POST("/drafts", s.handler.Create)
	s.router.GET("/drafts/:id", s.handler.Get)
	s.router.DELETE("/drafts/:id", s.handler.Cancel)
	s.router.PATCH("/drafts/:id/fields", s.handler.SetFields)
	s.router.PUT("/drafts/:id/tiers/:tierId", s.handler.SetTierValue)
	s.router.PUT("/drafts/:id/tiered-pricing", s.handler.SetTieredPricing)
	s.router.POST("/drafts/:id/images", s.handler.AddImage)
	s.router.DELETE("/drafts/:id/images/:index", s.handler.RemoveImage)
	s.router.GET("/drafts/:id/owner", s.handler.GetOwnerPanel)
	s.router.POST("/drafts/:id/owner/search", s.handler.SearchOwner)
	s.router.PUT("/drafts/:id/owner", s.handler.SelectOwner)
	s.router.DELETE("/drafts/:id/owner", s.handler.ClearOwner)
	s.router.POST("/drafts/:id/submit", s.handler.Submit)

	dir := ownerdir.NewMemoryDirectory(builder.OwnerCandidates())
	draft := builder.NewDealBuilder().BuildDraft(dir, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	s.draftID = draft.ID
	s.view = queries.NewDraftView(draft)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

func (s *DraftHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 with the fresh draft", func() {
		s.mockDraftCommands.EXPECT().Create(gomock.Any()).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil, "token")

		var response queries.DraftView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(s.draftID, response.ID)
	})

	s.Run("error: returns 500 when the session cannot be opened", func() {
		s.mockDraftCommands.EXPECT().Create(gomock.Any()).Return(nil, errors.New("store full")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *DraftHandlerTestSuite) TestGet() {
	url := "/drafts/" + s.draftID.String()

	s.Run("success: returns the draft view", func() {
		s.mockDraftQueries.EXPECT().Get(gomock.Any(), s.draftID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response queries.DraftView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.draftID, response.ID)
	})

	s.Run("error: 400 on malformed draft id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid draft ID format")
	})

	s.Run("error: 404 when the draft session is gone", func() {
		s.mockDraftQueries.EXPECT().Get(gomock.Any(), s.draftID).Return(nil, queries.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})
}

func (s *DraftHandlerTestSuite) TestSetFields() {
	url := "/drafts/" + s.draftID.String() + "/fields"
	reqBody := reqdto.SetFieldsRequest{Fields: map[string]any{"businessName": "Blue Bottle Cafe"}}

	s.Run("success: applies the batch and returns the updated draft", func() {
		s.mockDraftCommands.EXPECT().SetFields(gomock.Any(), s.draftID, reqBody.Fields).
			Return(s.view, deal.NewValidationResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")

		var response resdto.DraftEditResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Draft)
		s.Empty(response.Errors)
	})

	s.Run("success: rejected values come back as per-field errors", func() {
		result := deal.ValidationResult{deal.FieldDiscountAmount: "Must be a number"}
		s.mockDraftCommands.EXPECT().SetFields(gomock.Any(), s.draftID, gomock.Any()).
			Return(s.view, result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.SetFieldsRequest{Fields: map[string]any{"discountAmount": "abc"}}, "token")

		var response resdto.DraftEditResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Must be a number", response.Errors["discountAmount"])
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: fields (required)", mutate: testutil.Field("fields", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown field name",
				commandsError:  commands.ErrUnknownField,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown field name",
			},
			{
				name:           "field not directly editable",
				commandsError:  commands.ErrFieldNotEditable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Field is not directly editable",
			},
			{
				name:           "draft not found",
				commandsError:  commands.ErrDraftNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Draft not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDraftCommands.EXPECT().SetFields(gomock.Any(), s.draftID, gomock.Any()).
					Return(nil, nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *DraftHandlerTestSuite) TestSetTierValue() {
	url := fmt.Sprintf("/drafts/%s/tiers/gold", s.draftID)
	reqBody := reqdto.SetTierValueRequest{Value: "25.00"}

	s.Run("success: returns the updated draft", func() {
		s.mockDraftCommands.EXPECT().SetTierValue(gomock.Any(), s.draftID, "gold", "25.00").
			Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown tier", func() {
		s.mockDraftCommands.EXPECT().SetTierValue(gomock.Any(), s.draftID, "gold", "25.00").
			Return(nil, commands.ErrUnknownTier).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown tier")
	})
}

func (s *DraftHandlerTestSuite) TestSetTieredPricing() {
	url := "/drafts/" + s.draftID.String() + "/tiered-pricing"
	enabled := false
	reqBody := reqdto.SetTieredPricingRequest{Enabled: &enabled}

	s.Run("success: toggles tier participation", func() {
		s.mockDraftCommands.EXPECT().SetTieredPricing(gomock.Any(), s.draftID, false).
			Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when enabled flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *DraftHandlerTestSuite) TestImages() {
	addURL := "/drafts/" + s.draftID.String() + "/images"
	reqBody := reqdto.AddImageRequest{Ref: "uploads/front.jpg"}

	s.Run("success: attaches the image", func() {
		s.mockDraftCommands.EXPECT().AddImage(gomock.Any(), s.draftID, "uploads/front.jpg").
			Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, addURL, reqBody, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the image limit is reached", func() {
		s.mockDraftCommands.EXPECT().AddImage(gomock.Any(), s.draftID, "uploads/front.jpg").
			Return(nil, commands.ErrTooManyImages).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, addURL, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Image limit reached")
	})

	s.Run("error: 400 when the image ref is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, addURL, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: removes an image by position", func() {
		s.mockDraftCommands.EXPECT().RemoveImage(gomock.Any(), s.draftID, 2).
			Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, addURL+"/2", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on non-numeric image index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, addURL+"/two", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid image index format")
	})

	s.Run("error: 400 when the index is out of range", func() {
		s.mockDraftCommands.EXPECT().RemoveImage(gomock.Any(), s.draftID, 9).
			Return(nil, commands.ErrImageIndexInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, addURL+"/9", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Image index out of range")
	})
}

func (s *DraftHandlerTestSuite) TestOwner() {
	baseURL := "/drafts/" + s.draftID.String() + "/owner"

	s.Run("success: search returns the owner panel", func() {
		panel := &queries.OwnerPanelView{State: "results", Query: "john"}
		s.mockOwnerCommands.EXPECT().Search(gomock.Any(), s.draftID, "john").
			Return(panel, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, baseURL+"/search",
			reqdto.OwnerSearchRequest{Query: "john"}, "token")

		var response queries.OwnerPanelView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("results", response.State)
	})

	s.Run("success: select commits the candidate", func() {
		s.mockOwnerCommands.EXPECT().Select(gomock.Any(), s.draftID, "own-002").
			Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, baseURL,
			reqdto.OwnerSelectRequest{CandidateID: "own-002"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the candidate is not in the current results", func() {
		s.mockOwnerCommands.EXPECT().Select(gomock.Any(), s.draftID, "own-999").
			Return(nil, commands.ErrCandidateNotInResults).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, baseURL,
			reqdto.OwnerSelectRequest{CandidateID: "own-999"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Candidate is not in the current results")
	})

	s.Run("error: 400 when candidate id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, baseURL, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: clear resets the selection", func() {
		s.mockOwnerCommands.EXPECT().Clear(gomock.Any(), s.draftID).
			Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, baseURL, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: panel reflects current lookup state", func() {
		panel := &queries.OwnerPanelView{State: "idle"}
		s.mockDraftQueries.EXPECT().OwnerPanel(gomock.Any(), s.draftID).
			Return(panel, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "token")

		var response queries.OwnerPanelView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("idle", response.State)
	})
}

func (s *DraftHandlerTestSuite) TestSubmit() {
	url := "/drafts/" + s.draftID.String() + "/submit"

	s.Run("success: returns 201 with the accepted deal", func() {
		dealView := &queries.DealView{
			ID:           uuid.New(),
			BusinessName: "Blue Bottle Cafe",
			DealTitle:    "Spring Special",
		}
		s.mockDraftCommands.EXPECT().Submit(gomock.Any(), s.draftID).
			Return(dealView, deal.NewValidationResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response queries.DealView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(dealView.ID, response.ID)
	})

	s.Run("error: 422 with per-field errors when validation fails", func() {
		result := deal.ValidationResult{
			deal.FieldBusinessName: "Business name is required",
			deal.FieldEndDateTime:  "End date must be after start date",
		}
		s.mockDraftCommands.EXPECT().Submit(gomock.Any(), s.draftID).
			Return(nil, result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var response resdto.ValidationErrorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Len(response.Errors, 2)
		s.Equal("End date must be after start date", response.Errors["endDateTime"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "draft not found",
				commandsError:  commands.ErrDraftNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Draft not found",
			},
			{
				name:           "persistence failed",
				commandsError:  commands.ErrPersistenceFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to persist the accepted deal",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDraftCommands.EXPECT().Submit(gomock.Any(), s.draftID).
					Return(nil, nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *DraftHandlerTestSuite) TestCancel() {
	url := "/drafts/" + s.draftID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockDraftCommands.EXPECT().Cancel(gomock.Any(), s.draftID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already closed", func() {
		s.mockDraftCommands.EXPECT().Cancel(gomock.Any(), s.draftID).
			Return(commands.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})
}
