package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/RitaM5/Learn-Lingo-server/internal/auth"
	"github.com/RitaM5/Learn-Lingo-server/internal/middleware"
	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
	"github.com/RitaM5/Learn-Lingo-server/internal/utils"
)

type UserHandler struct {
	users   store.UserStore
	courses store.CourseStore
	tokens  *auth.TokenService
}

func NewUserHandler(users store.UserStore, courses store.CourseStore, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{users: users, courses: courses, tokens: tokens}
}

// IssueToken handles POST /jwt: signs a token for the posted identity.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var identity struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil || identity.Email == "" {
		utils.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.tokens.Issue(identity.Email, identity.Name)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetUsers handles GET /users (admin only).
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users. It is the idempotent first-sign-in check:
// an existing email is acknowledged without a second insert.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		models.User
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" {
		utils.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}

	_, err := h.users.FindByEmail(r.Context(), payload.Email)
	if err == nil {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusInternalServerError, "failed to check existing user")
		return
	}

	if payload.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "failed to create user")
			return
		}
		payload.User.Password = string(hashed)
	}
	payload.User.CreatedAt = time.Now()

	id, err := h.users.Insert(r.Context(), payload.User)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id.Hex(),
	})
}

// CheckAdmin handles GET /users/admin/{email}. A path email that differs
// from the token email is answered {admin:false} and nothing else runs.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, "admin", models.RoleAdmin)
}

// CheckInstructor handles GET /users/instructor/{email}.
func (h *UserHandler) CheckInstructor(w http.ResponseWriter, r *http.Request) {
	h.checkRole(w, r, "instructor", models.RoleInstructor)
}

func (h *UserHandler) checkRole(w http.ResponseWriter, r *http.Request, field string, role models.UserRole) {
	email := mux.Vars(r)["email"]

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok || claims.Email != email {
		utils.WriteJSON(w, http.StatusOK, map[string]bool{field: false})
		return
	}

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{field: user != nil && user.Role == role})
}

// PromoteAdmin handles PATCH /users/admin/{id}.
func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleAdmin)
}

// PromoteInstructor handles PATCH /users/constructor/{id}. The route name
// is a historical artifact of the public API; it promotes to instructor.
func (h *UserHandler) PromoteInstructor(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleInstructor)
}

func (h *UserHandler) promote(w http.ResponseWriter, r *http.Request, role models.UserRole) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	modified, err := h.users.UpdateRole(r.Context(), id, role)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to update role")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"acknowledged":  true,
		"modifiedCount": modified,
	})
}

type instructorCourse struct {
	ClassName string `json:"className"`
	Enrolled  int    `json:"enrolled"`
}

type popularInstructor struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	PhotoURL      string             `json:"photoURL"`
	TotalEnrolled int                `json:"totalEnrolled"`
	Courses       []instructorCourse `json:"courses"`
}

// PopularInstructors handles GET /popular-instructors: instructors ranked by
// aggregate enrollment across their courses, de-duplicated, top 6. Emails
// with no matching instructor record are skipped.
func (h *UserHandler) PopularInstructors(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.FindAll(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}

	totals := map[string]int{}
	byEmail := map[string][]models.Course{}
	emails := []string{}
	for _, course := range courses {
		if _, seen := byEmail[course.InstructorEmail]; !seen {
			emails = append(emails, course.InstructorEmail)
		}
		byEmail[course.InstructorEmail] = append(byEmail[course.InstructorEmail], course)
		totals[course.InstructorEmail] += course.Enrolled
	}

	// Deterministic ranking: aggregate enrollment desc, then email.
	sort.SliceStable(emails, func(i, j int) bool {
		if totals[emails[i]] != totals[emails[j]] {
			return totals[emails[i]] > totals[emails[j]]
		}
		return emails[i] < emails[j]
	})

	profiles := []popularInstructor{}
	for _, email := range emails {
		if len(profiles) == popularLimit {
			break
		}
		user, err := h.users.FindByEmail(r.Context(), email)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "failed to fetch instructors")
			return
		}
		if user.Role != models.RoleInstructor {
			continue
		}

		taught := []instructorCourse{}
		for _, course := range byEmail[email] {
			taught = append(taught, instructorCourse{ClassName: course.ClassName, Enrolled: course.Enrolled})
		}
		profiles = append(profiles, popularInstructor{
			Name:          user.Name,
			Email:         user.Email,
			PhotoURL:      user.PhotoURL,
			TotalEnrolled: totals[email],
			Courses:       taught,
		})
	}

	utils.WriteJSON(w, http.StatusOK, profiles)
}

// AllInstructors handles GET /all-instructors: every instructor with the
// courses they teach.
func (h *UserHandler) AllInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.users.FindByRole(r.Context(), models.RoleInstructor)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch instructors")
		return
	}
	courses, err := h.courses.FindAll(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}

	type instructorProfile struct {
		InstructorImage string          `json:"instructorImage"`
		Name            string          `json:"name"`
		Email           string          `json:"email"`
		Courses         []models.Course `json:"courses"`
	}

	profiles := []instructorProfile{}
	for _, instructor := range instructors {
		taught := []models.Course{}
		for _, course := range courses {
			if course.InstructorEmail == instructor.Email {
				taught = append(taught, course)
			}
		}
		profiles = append(profiles, instructorProfile{
			InstructorImage: instructor.PhotoURL,
			Name:            instructor.Name,
			Email:           instructor.Email,
			Courses:         taught,
		})
	}

	utils.WriteJSON(w, http.StatusOK, profiles)
}
