package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RitaM5/Learn-Lingo-server/internal/middleware"
	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
	"github.com/RitaM5/Learn-Lingo-server/internal/utils"
)

// popularLimit is the fixed size of the popular-classes and
// popular-instructors rankings.
const popularLimit = 6

type CourseHandler struct {
	courses store.CourseStore
}

func NewCourseHandler(courses store.CourseStore) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// GetApprovedClasses handles GET /classes: only approved courses are public.
func (h *CourseHandler) GetApprovedClasses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.FindApproved(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}
	utils.WriteJSON(w, http.StatusOK, courses)
}

// GetPopularClasses handles GET /popular-classes: top courses by enrollment,
// ties broken by id for a deterministic order.
func (h *CourseHandler) GetPopularClasses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.FindAll(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}

	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].Enrolled != courses[j].Enrolled {
			return courses[i].Enrolled > courses[j].Enrolled
		}
		return courses[i].ID.Hex() < courses[j].ID.Hex()
	})
	if len(courses) > popularLimit {
		courses = courses[:popularLimit]
	}

	utils.WriteJSON(w, http.StatusOK, courses)
}

// GetAllClasses handles GET /all-classes (admin only): every course in every
// status.
func (h *CourseHandler) GetAllClasses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.FindAll(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}
	utils.WriteJSON(w, http.StatusOK, courses)
}

// GetMyClasses handles GET /my-classes (instructor only): the authenticated
// instructor's own courses.
func (h *CourseHandler) GetMyClasses(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	courses, err := h.courses.FindByInstructor(r.Context(), claims.Email)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}
	utils.WriteJSON(w, http.StatusOK, courses)
}

// CreateClass handles POST /classes (instructor only). New courses start
// pending until an admin approves them.
func (h *CourseHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if course.ClassName == "" {
		utils.WriteError(w, http.StatusBadRequest, "className is required")
		return
	}

	if claims, ok := middleware.ClaimsFrom(r.Context()); ok && course.InstructorEmail == "" {
		course.InstructorEmail = claims.Email
	}
	if course.Status == "" {
		course.Status = models.StatusPending
	}
	course.CreatedAt = time.Now()

	id, err := h.courses.Insert(r.Context(), course)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to create class")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id.Hex(),
	})
}

// ApproveClass handles PUT /classes/approve/{id}. Re-approving an approved
// course is a no-op, not an error.
func (h *CourseHandler) ApproveClass(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusApproved)
}

// DenyClass handles PUT /classes/deny/{id}.
func (h *CourseHandler) DenyClass(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusDenied)
}

func (h *CourseHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.CourseStatus) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	modified, err := h.courses.SetStatus(r.Context(), id, status)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "class not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to update class")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"acknowledged":  true,
		"modifiedCount": modified,
	})
}

// SendFeedback handles POST /classes/feedback/{classId}: replaces any
// previous feedback, last write wins.
func (h *CourseHandler) SendFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["classId"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid class id")
		return
	}

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	modified, err := h.courses.SetFeedback(r.Context(), id, body.Feedback)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "class not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to update class")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"acknowledged":  true,
		"modifiedCount": modified,
	})
}
