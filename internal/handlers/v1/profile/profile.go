package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finpro-ledger/internal/logging"
	"github.com/carson-networks/finpro-ledger/internal/service"
)

// Profile is the API model for the budget configuration.
type Profile struct {
	DisplayName     string `json:"displayName" doc:"Name shown in the greeting"`
	MonthlyGoal     string `json:"monthlyGoal" doc:"Monthly spending goal"`
	ThemePreference bool   `json:"themePreference" doc:"True for the dark theme"`
}

// ProfileOutput is the Huma output shared by every profile endpoint.
type ProfileOutput struct {
	Body Profile
}

// UpdateProfileBody is the settings form.
type UpdateProfileBody struct {
	DisplayName string `json:"displayName,omitempty" doc:"New name; empty keeps the current one"`
	MonthlyGoal string `json:"monthlyGoal,omitempty" doc:"New goal; ignored unless a positive number"`
}

// UpdateProfileInput is the Huma input for saving the settings form.
type UpdateProfileInput struct {
	Body UpdateProfileBody
}

type profileEditor interface {
	Get() service.Profile
	Update(form service.ProfileForm) (service.Profile, error)
	ToggleTheme() (service.Profile, error)
}

// Handler serves the /v1/profile endpoints.
type Handler struct {
	ProfileService profileEditor
}

func NewHandler(svc profileEditor) *Handler {
	return &Handler{ProfileService: svc}
}

// Register registers the profile endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile",
		Summary:     "Get profile",
		Tags:        []string{"Profile"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/v1/profile",
		Summary:     "Update profile",
		Description: "Saves the settings form. Fields that are empty or do not parse keep their current value.",
		Tags:        []string{"Profile"},
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID: "toggle-theme",
		Method:      http.MethodPost,
		Path:        "/v1/profile/theme",
		Summary:     "Toggle theme",
		Tags:        []string{"Profile"},
	}, h.toggleTheme)
}

func (h *Handler) get(_ context.Context, _ *struct{}) (*ProfileOutput, error) {
	return toOutput(h.ProfileService.Get()), nil
}

func (h *Handler) update(_ context.Context, input *UpdateProfileInput) (*ProfileOutput, error) {
	updated, err := h.ProfileService.Update(service.ProfileForm{
		DisplayName: input.Body.DisplayName,
		MonthlyGoal: input.Body.MonthlyGoal,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to save profile", err)
	}
	return toOutput(updated), nil
}

func (h *Handler) toggleTheme(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	updated, err := h.ProfileService.ToggleTheme()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to save theme", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("dark", updated.ThemePreference)
	}
	return toOutput(updated), nil
}

func toOutput(p service.Profile) *ProfileOutput {
	return &ProfileOutput{Body: Profile{
		DisplayName:     p.DisplayName,
		MonthlyGoal:     p.MonthlyGoal.String(),
		ThemePreference: p.ThemePreference,
	}}
}
