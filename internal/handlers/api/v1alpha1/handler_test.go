package v1alpha1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	v1alpha1 "github.com/storynest/storynest-api/internal/handlers/api/v1alpha1"
	creditssvc "github.com/storynest/storynest-api/internal/services/credits"
	creditsmock "github.com/storynest/storynest-api/internal/services/credits/mock"
	profilesvc "github.com/storynest/storynest-api/internal/services/profile"
	profilemock "github.com/storynest/storynest-api/internal/services/profile/mock"
	wizardsvc "github.com/storynest/storynest-api/internal/services/wizard"
	wizardmock "github.com/storynest/storynest-api/internal/services/wizard/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	wizardService  *wizardmock.MockService
	profileService *profilemock.MockService
	creditsService *creditsmock.MockService

	router *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.wizardService = wizardmock.NewMockService(s.ctrl)
	s.profileService = profilemock.NewMockService(s.ctrl)
	s.creditsService = creditsmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		WizardService:  s.wizardService,
		ProfileService: s.profileService,
		CreditsService: s.creditsService,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Owner-ID", "owner_1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) TestMissingOwnerHeaderIsUnauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1alpha1/wizard", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestStartWizard() {
	s.wizardService.EXPECT().
		StartWizard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *wizardsvc.StartWizardInput) (*wizardsvc.StartWizardOutput, error) {
			s.Equal("owner_1", input.OwnerID)
			s.Equal([]string{"child_1"}, input.SelectedChildIDs)
			return &wizardsvc.StartWizardOutput{Session: &story.WizardSession{ID: "wizard_1", OwnerID: "owner_1"}}, nil
		})

	w := s.request(http.MethodPost, "/api/v1alpha1/wizard", `{"selected_child_ids":["child_1"]}`)
	s.Equal(http.StatusCreated, w.Code)

	var body struct {
		Session story.WizardSession `json:"session"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("wizard_1", body.Session.ID)
}

func (s *HandlerTestSuite) TestGetWizardNotFound() {
	s.wizardService.EXPECT().
		GetWizard(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("no wizard session found for owner %s", "owner_1"))

	w := s.request(http.MethodGet, "/api/v1alpha1/wizard", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "NOT_FOUND")
}

func (s *HandlerTestSuite) TestSetMode() {
	s.wizardService.EXPECT().
		SetMode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *wizardsvc.SetModeInput) (*wizardsvc.SetModeOutput, error) {
			s.Equal(story.ModeCustom, input.Mode)
			return &wizardsvc.SetModeOutput{Session: &story.WizardSession{ID: "wizard_1", Mode: story.ModeCustom}}, nil
		})

	w := s.request(http.MethodPut, "/api/v1alpha1/wizard/mode", `{"mode":"custom"}`)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestToggleChild() {
	s.wizardService.EXPECT().
		ToggleChild(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *wizardsvc.ToggleChildInput) (*wizardsvc.ToggleChildOutput, error) {
			s.Equal("child_1", input.ChildID)
			return &wizardsvc.ToggleChildOutput{Selected: true, Session: &story.WizardSession{ID: "wizard_1"}}, nil
		})

	w := s.request(http.MethodPost, "/api/v1alpha1/wizard/children/child_1/toggle", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"selected":true`)
}

func (s *HandlerTestSuite) TestUpdateOneOffOutOfBoundsIs404() {
	s.wizardService.EXPECT().
		UpdateOneOffCharacter(gomock.Any(), gomock.Any()).
		Return(&wizardsvc.UpdateOneOffCharacterOutput{Updated: false}, nil)

	w := s.request(http.MethodPut, "/api/v1alpha1/wizard/one-offs/9", `{"name":"Sparkle"}`)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestUpdateOneOffBadIndex() {
	w := s.request(http.MethodPut, "/api/v1alpha1/wizard/one-offs/banana", `{"name":"Sparkle"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestRemoveOneOff() {
	s.wizardService.EXPECT().
		RemoveOneOffCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *wizardsvc.RemoveOneOffCharacterInput) (*wizardsvc.RemoveOneOffCharacterOutput, error) {
			s.Equal(0, input.Index)
			return &wizardsvc.RemoveOneOffCharacterOutput{Removed: true, Session: &story.WizardSession{ID: "wizard_1"}}, nil
		})

	w := s.request(http.MethodDelete, "/api/v1alpha1/wizard/one-offs/0", "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestSubmitStoryWithoutCreditsIs412() {
	s.wizardService.EXPECT().
		SubmitStory(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("no story credits remaining"))

	w := s.request(http.MethodPost, "/api/v1alpha1/wizard/submit", `{"title":"My Story"}`)
	s.Equal(http.StatusPreconditionFailed, w.Code)
}

func (s *HandlerTestSuite) TestCreateChild() {
	s.profileService.EXPECT().
		CreateChild(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profilesvc.CreateChildInput) (*profilesvc.CreateChildOutput, error) {
			s.Equal("Maya", input.Name)
			return &profilesvc.CreateChildOutput{Child: &story.Child{ID: "child_1", Name: "Maya"}}, nil
		})

	w := s.request(http.MethodPost, "/api/v1alpha1/children", `{"name":"Maya","birth_date":"2019-06-01"}`)
	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestCreateChildWithoutName() {
	w := s.request(http.MethodPost, "/api/v1alpha1/children", `{"birth_date":"2019-06-01"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetBalance() {
	s.creditsService.EXPECT().
		GetBalance(gomock.Any(), gomock.Any()).
		Return(&creditssvc.GetBalanceOutput{Balance: &story.CreditBalance{
			OwnerID:      "owner_1",
			StoryCredits: 4,
			Plan:         "family_monthly",
			PlanActive:   true,
		}}, nil)

	w := s.request(http.MethodGet, "/api/v1alpha1/credits", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"story_credits":4`)
}

func (s *HandlerTestSuite) TestRecordCreditEventReplayIs200() {
	s.creditsService.EXPECT().
		RecordEvent(gomock.Any(), gomock.Any()).
		Return(&creditssvc.RecordEventOutput{Applied: false, Balance: &story.CreditBalance{StoryCredits: 5}}, nil)

	w := s.request(http.MethodPost, "/api/v1alpha1/credits/events", `{"event_id":"evt_1","delta":5,"source":"purchase"}`)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"applied":false`)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
