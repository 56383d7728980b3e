package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/RitaM5/Learn-Lingo-server/internal/mailer"
	"github.com/RitaM5/Learn-Lingo-server/internal/middleware"
	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/payments"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
	"github.com/RitaM5/Learn-Lingo-server/internal/utils"
)

type PaymentHandler struct {
	payments store.PaymentStore
	gateway  payments.Gateway
	mail     *mailer.Mailer
}

func NewPaymentHandler(paymentStore store.PaymentStore, gateway payments.Gateway, mail *mailer.Mailer) *PaymentHandler {
	return &PaymentHandler{payments: paymentStore, gateway: gateway, mail: mail}
}

// CreatePaymentIntent handles POST /create-payment: asks the gateway for an
// intent and hands the client secret back. Nothing is persisted yet.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	amount := int64(math.Round(body.Price * 100))
	if amount <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "invalid price")
		return
	}

	clientSecret, err := h.gateway.CreatePaymentIntent(r.Context(), amount, "usd")
	if err != nil {
		log.Printf("Payment intent creation failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// GetEnrolledClasses handles GET /payments/classes.
func (h *PaymentHandler) GetEnrolledClasses(w http.ResponseWriter, r *http.Request) {
	records, err := h.payments.FindAll(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch payments")
		return
	}
	utils.WriteJSON(w, http.StatusOK, records)
}

// GetPaymentHistory handles GET /payments/history, newest first.
func (h *PaymentHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.payments.FindAllByDateDesc(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch payments")
		return
	}
	utils.WriteJSON(w, http.StatusOK, records)
}

// CommitPayment handles POST /payments: the enrollment transaction. The
// payment insert, selection delete and seat adjustment commit atomically;
// a replayed selection id aborts with not-found instead of decrementing
// seats a second time.
func (h *PaymentHandler) CommitPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payment.SelectItems == "" || payment.ClassItems == "" {
		utils.WriteError(w, http.StatusBadRequest, "selectItems and classItems are required")
		return
	}

	if claims, ok := middleware.ClaimsFrom(r.Context()); ok && payment.Email == "" {
		payment.Email = claims.Email
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}

	result, err := h.payments.CommitEnrollment(r.Context(), payment)
	if errors.Is(err, store.ErrSelectionNotFound) || errors.Is(err, store.ErrCourseNotFound) {
		utils.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("Enrollment commit failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "transaction failed")
		return
	}

	if h.mail.Enabled() {
		go func() {
			if err := h.mail.SendReceipt(payment.Email, payment.ClassName, payment.TransactionID, payment.Price); err != nil {
				log.Printf("Receipt email failed for %s: %v", payment.Email, err)
			}
		}()
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
