// Package v1alpha1 exposes the story API over HTTP
package v1alpha1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	creditssvc "github.com/storynest/storynest-api/internal/services/credits"
	profilesvc "github.com/storynest/storynest-api/internal/services/profile"
	wizardsvc "github.com/storynest/storynest-api/internal/services/wizard"
)

// ownerHeader carries the authenticated account ID, set by the auth proxy in
// front of this service
const ownerHeader = "X-Owner-ID"

// HandlerConfig holds the dependencies for the API handler
type HandlerConfig struct {
	WizardService  wizardsvc.Service
	ProfileService profilesvc.Service
	CreditsService creditssvc.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WizardService == nil {
		vb.RequiredField("WizardService")
	}
	if c.ProfileService == nil {
		vb.RequiredField("ProfileService")
	}
	if c.CreditsService == nil {
		vb.RequiredField("CreditsService")
	}

	return vb.Build()
}

// Handler serves the v1alpha1 JSON API
type Handler struct {
	wizardService  wizardsvc.Service
	profileService profilesvc.Service
	creditsService creditssvc.Service
}

// NewHandler creates a new API handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		wizardService:  cfg.WizardService,
		profileService: cfg.ProfileService,
		creditsService: cfg.CreditsService,
	}, nil
}

// RegisterRoutes mounts the API under /api/v1alpha1
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api/v1alpha1")

	wizard := api.Group("/wizard")
	wizard.POST("", h.startWizard)
	wizard.GET("", h.getWizard)
	wizard.DELETE("", h.cancelWizard)
	wizard.PUT("/mode", h.setMode)
	wizard.POST("/children/:id/toggle", h.toggleChild)
	wizard.POST("/saved-characters/:id/toggle", h.toggleSavedCharacter)
	wizard.POST("/one-offs", h.addOneOff)
	wizard.PUT("/one-offs/:index", h.updateOneOff)
	wizard.DELETE("/one-offs/:index", h.removeOneOff)
	wizard.POST("/submit", h.submitStory)

	stories := api.Group("/stories")
	stories.GET("", h.listStories)
	stories.GET("/:id", h.getStory)
	stories.DELETE("/:id", h.deleteStory)

	children := api.Group("/children")
	children.POST("", h.createChild)
	children.GET("", h.listChildren)
	children.GET("/:id", h.getChild)
	children.PUT("/:id", h.updateChild)
	children.DELETE("/:id", h.deleteChild)

	saved := api.Group("/saved-characters")
	saved.POST("", h.createSavedCharacter)
	saved.GET("", h.listSavedCharacters)
	saved.GET("/:id", h.getSavedCharacter)
	saved.PUT("/:id", h.updateSavedCharacter)
	saved.DELETE("/:id", h.deleteSavedCharacter)

	credits := api.Group("/credits")
	credits.GET("", h.getBalance)
	credits.GET("/events", h.listCreditEvents)
	credits.POST("/events", h.recordCreditEvent)
}

// ownerID extracts the account ID set by the auth proxy
func ownerID(c *gin.Context) (string, bool) {
	id := c.GetHeader(ownerHeader)
	if id == "" {
		errors.AbortWithError(c, errors.Unauthenticated("missing owner identity"))
		return "", false
	}
	return id, true
}

// indexParam parses the :index path segment
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		errors.AbortWithError(c, errors.InvalidArgumentf("invalid index %q", c.Param("index")))
		return 0, false
	}
	return index, true
}

// Wizard endpoints

type startWizardRequest struct {
	SelectedChildIDs []string `json:"selected_child_ids"`
}

func (h *Handler) startWizard(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req startWizardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.AbortWithError(c, errors.InvalidArgument("invalid request body"))
			return
		}
	}

	output, err := h.wizardService.StartWizard(c.Request.Context(), &wizardsvc.StartWizardInput{
		OwnerID:          owner,
		SelectedChildIDs: req.SelectedChildIDs,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": output.Session})
}

func (h *Handler) getWizard(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.wizardService.GetWizard(c.Request.Context(), &wizardsvc.GetWizardInput{OwnerID: owner})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": output.Session})
}

func (h *Handler) cancelWizard(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if _, err := h.wizardService.CancelWizard(c.Request.Context(), &wizardsvc.CancelWizardInput{OwnerID: owner}); err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type setModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func (h *Handler) setMode(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req setModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("mode is required"))
		return
	}

	output, err := h.wizardService.SetMode(c.Request.Context(), &wizardsvc.SetModeInput{
		OwnerID: owner,
		Mode:    story.Mode(req.Mode),
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": output.Session})
}

func (h *Handler) toggleChild(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.wizardService.ToggleChild(c.Request.Context(), &wizardsvc.ToggleChildInput{
		OwnerID: owner,
		ChildID: c.Param("id"),
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": output.Selected, "session": output.Session})
}

func (h *Handler) toggleSavedCharacter(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.wizardService.ToggleSavedCharacter(c.Request.Context(), &wizardsvc.ToggleSavedCharacterInput{
		OwnerID:          owner,
		SavedCharacterID: c.Param("id"),
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selected": output.Selected, "session": output.Session})
}

type oneOffRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Appearance  string `json:"appearance"`
}

func (h *Handler) addOneOff(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req oneOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("name is required"))
		return
	}

	output, err := h.wizardService.AddOneOffCharacter(c.Request.Context(), &wizardsvc.AddOneOffCharacterInput{
		OwnerID:     owner,
		Name:        req.Name,
		Description: req.Description,
		Appearance:  req.Appearance,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"character": output.Character, "session": output.Session})
}

func (h *Handler) updateOneOff(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var req oneOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("name is required"))
		return
	}

	output, err := h.wizardService.UpdateOneOffCharacter(c.Request.Context(), &wizardsvc.UpdateOneOffCharacterInput{
		OwnerID:     owner,
		Index:       index,
		Name:        req.Name,
		Description: req.Description,
		Appearance:  req.Appearance,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}
	if !output.Updated {
		errors.AbortWithError(c, errors.NotFoundf("no one-off character at index %d", index))
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": output.Session})
}

func (h *Handler) removeOneOff(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}

	output, err := h.wizardService.RemoveOneOffCharacter(c.Request.Context(), &wizardsvc.RemoveOneOffCharacterInput{
		OwnerID: owner,
		Index:   index,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}
	if !output.Removed {
		errors.AbortWithError(c, errors.NotFoundf("no one-off character at index %d", index))
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": output.Session})
}

type submitStoryRequest struct {
	Title string `json:"title"`
}

func (h *Handler) submitStory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req submitStoryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.AbortWithError(c, errors.InvalidArgument("invalid request body"))
			return
		}
	}

	output, err := h.wizardService.SubmitStory(c.Request.Context(), &wizardsvc.SubmitStoryInput{
		OwnerID: owner,
		Title:   req.Title,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"story": output.Story})
}

// Story library endpoints

func (h *Handler) listStories(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.wizardService.ListStories(c.Request.Context(), &wizardsvc.ListStoriesInput{OwnerID: owner})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": output.Stories})
}

func (h *Handler) getStory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.wizardService.GetStory(c.Request.Context(), &wizardsvc.GetStoryInput{
		OwnerID: owner,
		StoryID: c.Param("id"),
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": output.Story})
}

func (h *Handler) deleteStory(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if _, err := h.wizardService.DeleteStory(c.Request.Context(), &wizardsvc.DeleteStoryInput{
		OwnerID: owner,
		StoryID: c.Param("id"),
	}); err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Child profile endpoints

type childRequest struct {
	Name        string `json:"name" binding:"required"`
	BirthDate   string `json:"birth_date"`
	Preferences string `json:"preferences"`
}

func (h *Handler) createChild(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req childRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("name is required"))
		return
	}

	output, err := h.profileService.CreateChild(c.Request.Context(), &profilesvc.CreateChildInput{
		OwnerID:     owner,
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Preferences: req.Preferences,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"child": output.Child})
}

func (h *Handler) listChildren(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.profileService.ListChildren(c.Request.Context(), &profilesvc.ListChildrenInput{OwnerID: owner})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"children": output.Children})
}

func (h *Handler) getChild(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.profileService.GetChild(c.Request.Context(), &profilesvc.GetChildInput{
		OwnerID: owner,
		ChildID: c.Param("id"),
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"child": output.Child})
}

func (h *Handler) updateChild(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req childRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("name is required"))
		return
	}

	output, err := h.profileService.UpdateChild(c.Request.Context(), &profilesvc.UpdateChildInput{
		OwnerID:     owner,
		ChildID:     c.Param("id"),
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Preferences: req.Preferences,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"child": output.Child})
}

func (h *Handler) deleteChild(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if _, err := h.profileService.DeleteChild(c.Request.Context(), &profilesvc.DeleteChildInput{
		OwnerID: owner,
		ChildID: c.Param("id"),
	}); err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Saved character endpoints

type savedCharacterRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Appearance  string `json:"appearance"`
}

func (h *Handler) createSavedCharacter(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req savedCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("name is required"))
		return
	}

	output, err := h.profileService.CreateSavedCharacter(c.Request.Context(), &profilesvc.CreateSavedCharacterInput{
		OwnerID:     owner,
		Name:        req.Name,
		Description: req.Description,
		Appearance:  req.Appearance,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"character": output.Character})
}

func (h *Handler) listSavedCharacters(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.profileService.ListSavedCharacters(c.Request.Context(), &profilesvc.ListSavedCharactersInput{OwnerID: owner})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"characters": output.Characters})
}

func (h *Handler) getSavedCharacter(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.profileService.GetSavedCharacter(c.Request.Context(), &profilesvc.GetSavedCharacterInput{
		OwnerID:          owner,
		SavedCharacterID: c.Param("id"),
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"character": output.Character})
}

func (h *Handler) updateSavedCharacter(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req savedCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("name is required"))
		return
	}

	output, err := h.profileService.UpdateSavedCharacter(c.Request.Context(), &profilesvc.UpdateSavedCharacterInput{
		OwnerID:          owner,
		SavedCharacterID: c.Param("id"),
		Name:             req.Name,
		Description:      req.Description,
		Appearance:       req.Appearance,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"character": output.Character})
}

func (h *Handler) deleteSavedCharacter(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if _, err := h.profileService.DeleteSavedCharacter(c.Request.Context(), &profilesvc.DeleteSavedCharacterInput{
		OwnerID:          owner,
		SavedCharacterID: c.Param("id"),
	}); err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Credit endpoints

func (h *Handler) getBalance(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.creditsService.GetBalance(c.Request.Context(), &creditssvc.GetBalanceInput{OwnerID: owner})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": output.Balance})
}

func (h *Handler) listCreditEvents(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	output, err := h.creditsService.ListEvents(c.Request.Context(), &creditssvc.ListEventsInput{OwnerID: owner})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": output.Events})
}

type recordEventRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Delta   int64  `json:"delta" binding:"required"`
	Source  string `json:"source" binding:"required"`
}

func (h *Handler) recordCreditEvent(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.AbortWithError(c, errors.InvalidArgument("event_id, delta and source are required"))
		return
	}

	output, err := h.creditsService.RecordEvent(c.Request.Context(), &creditssvc.RecordEventInput{
		EventID: req.EventID,
		OwnerID: owner,
		Delta:   req.Delta,
		Source:  req.Source,
	})
	if err != nil {
		errors.AbortWithError(c, err)
		return
	}

	status := http.StatusCreated
	if !output.Applied {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"applied": output.Applied, "balance": output.Balance})
}
