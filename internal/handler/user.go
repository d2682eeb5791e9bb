package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/MakeServer_Go/internal/domain"
	"github.com/osse101/MakeServer_Go/internal/makerspace"
)

// UserHandler serves user, auth and quiz routes
type UserHandler struct {
	service makerspace.Service
}

func NewUserHandler(service makerspace.Service) *UserHandler {
	return &UserHandler{service: service}
}

// HandleGetQuizzes lists the quiz catalogue
// @Summary Get quizzes
// @Tags users
// @Produce json
// @Param api_key path string true "Admin key"
// @Success 200 {array} domain.Quiz
// @Failure 401 {object} ErrorResponse
// @Router /quizzes/{api_key} [get]
func (h *UserHandler) HandleGetQuizzes(w http.ResponseWriter, r *http.Request) {
	var p keyPath
	if !bindPathParams(w, r, &p) {
		return
	}
	quizzes, err := h.service.GetQuizzes(r.Context(), p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpGetQuizzes, err)
		return
	}
	respondJSON(w, http.StatusOK, quizzes)
}

// HandleGetAllUsers lists every user
// @Summary Get all users
// @Tags users
// @Produce json
// @Param api_key path string true "Admin key"
// @Success 200 {array} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /users/all/{api_key} [get]
func (h *UserHandler) HandleGetAllUsers(w http.ResponseWriter, r *http.Request) {
	var p keyPath
	if !bindPathParams(w, r, &p) {
		return
	}
	users, err := h.service.GetAllUsers(r.Context(), p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpGetAllUsers, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// HandleGetUserInfo returns one user with their checkouts
// @Summary Get user info
// @Description Returns the user with pending and all checkouts. No key required.
// @Tags users
// @Produce json
// @Param id_number path int true "College id"
// @Success 200 {object} domain.UserInfo
// @Failure 400 {object} ErrorResponse
// @Router /users/info/{id_number} [get]
func (h *UserHandler) HandleGetUserInfo(w http.ResponseWriter, r *http.Request) {
	var p userPath
	if !bindPathParams(w, r, &p) {
		return
	}
	info, err := h.service.GetUserInfo(r.Context(), collegeID(p.IDNumber))
	if err != nil {
		respondServiceError(w, r, OpGetUserInfo, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// HandleSetAuthLevel changes a user's auth level
// @Summary Set auth level
// @Tags auth
// @Produce json
// @Param id_number path int true "College id"
// @Param auth_level path string true "student, checkout_staff, storage_staff or admin"
// @Param api_key path string true "Admin key"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/set_level/{id_number}/{auth_level}/{api_key} [post]
func (h *UserHandler) HandleSetAuthLevel(w http.ResponseWriter, r *http.Request) {
	var p setAuthLevelPath
	if !bindPathParams(w, r, &p) {
		return
	}
	level, _ := domain.ParseAuthLevel(p.AuthLevel)
	user, err := h.service.SetAuthLevel(r.Context(), collegeID(p.IDNumber), level, p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpSetAuthLevel, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// HandleSetQuiz records whether a user passed a quiz
// @Summary Set quiz result
// @Tags auth
// @Produce json
// @Param id_number path int true "College id"
// @Param quiz_name path string true "Quiz name"
// @Param passed path bool true "Whether the quiz was passed"
// @Param api_key path string true "Admin key"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/set_quiz/{id_number}/{quiz_name}/{passed}/{api_key} [post]
func (h *UserHandler) HandleSetQuiz(w http.ResponseWriter, r *http.Request) {
	var p setQuizPath
	if !bindPathParams(w, r, &p) {
		return
	}
	passed, _ := strconv.ParseBool(p.Passed)
	user, err := h.service.SetQuizPassed(r.Context(), collegeID(p.IDNumber), p.QuizName, passed, p.APIKey)
	if err != nil {
		respondServiceError(w, r, OpSetQuiz, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}
