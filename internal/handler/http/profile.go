package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/profile"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{profileService: profileService}
}

// Create implements ProfileHandler.
func (h *ProfileHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	teacherID := chi.URLParam(r, "teacherId")
	if teacherID == "" {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	var req profile.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TeacherID = teacherID

	created, err := h.profileService.CreateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay profile created successfully", created)
}

// List implements ProfileHandler.
func (h *ProfileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	teacherID := chi.URLParam(r, "teacherId")
	if teacherID == "" {
		response.BadRequest(w, "Teacher ID is required", nil)
		return
	}

	profiles, err := h.profileService.ListProfiles(r.Context(), teacherID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profiles)
}
