package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RitaM5/Learn-Lingo-server/internal/auth"
	"github.com/RitaM5/Learn-Lingo-server/internal/handlers"
	"github.com/RitaM5/Learn-Lingo-server/internal/mailer"
	"github.com/RitaM5/Learn-Lingo-server/internal/middleware"
	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/payments"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
)

// Deps is everything the router needs; main wires the Mongo-backed
// implementations, tests wire memstore and a fake gateway.
type Deps struct {
	Users      store.UserStore
	Courses    store.CourseStore
	Selections store.SelectionStore
	Payments   store.PaymentStore
	Tokens     *auth.TokenService
	Gateway    payments.Gateway
	Mailer     *mailer.Mailer
}

func SetupRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	authMW := &middleware.Auth{Tokens: d.Tokens, Users: d.Users}
	authed := func(h http.HandlerFunc) http.Handler {
		return authMW.RequireAuth(h)
	}
	withRole := func(role models.UserRole, h http.HandlerFunc) http.Handler {
		return authMW.RequireAuth(authMW.RequireRole(role)(h))
	}

	userHandler := handlers.NewUserHandler(d.Users, d.Courses, d.Tokens)
	courseHandler := handlers.NewCourseHandler(d.Courses)
	selectionHandler := handlers.NewSelectionHandler(d.Selections)
	paymentHandler := handlers.NewPaymentHandler(d.Payments, d.Gateway, d.Mailer)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lingo is sitting"))
	}).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	router.HandleFunc("/jwt", userHandler.IssueToken).Methods("POST")

	router.HandleFunc("/classes", courseHandler.GetApprovedClasses).Methods("GET")
	router.HandleFunc("/popular-classes", courseHandler.GetPopularClasses).Methods("GET")
	router.Handle("/all-classes", withRole(models.RoleAdmin, courseHandler.GetAllClasses)).Methods("GET")
	router.Handle("/my-classes", withRole(models.RoleInstructor, courseHandler.GetMyClasses)).Methods("GET")
	router.Handle("/classes", withRole(models.RoleInstructor, courseHandler.CreateClass)).Methods("POST")
	router.Handle("/classes/approve/{id}", withRole(models.RoleAdmin, courseHandler.ApproveClass)).Methods("PUT")
	router.Handle("/classes/deny/{id}", withRole(models.RoleAdmin, courseHandler.DenyClass)).Methods("PUT")
	router.Handle("/classes/feedback/{classId}", withRole(models.RoleAdmin, courseHandler.SendFeedback)).Methods("POST")

	router.HandleFunc("/popular-instructors", userHandler.PopularInstructors).Methods("GET")
	router.HandleFunc("/all-instructors", userHandler.AllInstructors).Methods("GET")

	router.Handle("/users", withRole(models.RoleAdmin, userHandler.GetUsers)).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.Handle("/users/admin/{email}", authed(userHandler.CheckAdmin)).Methods("GET")
	router.Handle("/users/instructor/{email}", authed(userHandler.CheckInstructor)).Methods("GET")
	router.Handle("/users/admin/{id}", withRole(models.RoleAdmin, userHandler.PromoteAdmin)).Methods("PATCH")
	// Path kept verbatim from the public API; it promotes to instructor.
	router.Handle("/users/constructor/{id}", withRole(models.RoleAdmin, userHandler.PromoteInstructor)).Methods("PATCH")

	router.HandleFunc("/select/{id}", selectionHandler.GetSelection).Methods("GET")
	router.Handle("/select", authed(selectionHandler.GetMySelections)).Methods("GET")
	router.HandleFunc("/select", selectionHandler.CreateSelection).Methods("POST")
	router.HandleFunc("/select/{id}", selectionHandler.DeleteSelection).Methods("DELETE")

	router.Handle("/create-payment", authed(paymentHandler.CreatePaymentIntent)).Methods("POST")
	router.Handle("/payments/classes", authed(paymentHandler.GetEnrolledClasses)).Methods("GET")
	router.Handle("/payments/history", authed(paymentHandler.GetPaymentHistory)).Methods("GET")
	router.Handle("/payments", authed(paymentHandler.CommitPayment)).Methods("POST")

	return router
}
