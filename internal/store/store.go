// Package store defines the persistence interfaces the handlers depend on.
// Implementations live in mongostore (production) and memstore (tests).
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RitaM5/Learn-Lingo-server/internal/models"
)

var (
	// ErrNotFound reports an absent document on single-document lookups.
	ErrNotFound = errors.New("document not found")
	// ErrSelectionNotFound aborts an enrollment commit whose selection is
	// missing or was already consumed.
	ErrSelectionNotFound = errors.New("selection not found")
	// ErrCourseNotFound aborts an enrollment commit referencing a missing
	// course.
	ErrCourseNotFound = errors.New("course not found")
)

type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (int64, error)
}

type CourseStore interface {
	FindAll(ctx context.Context) ([]models.Course, error)
	FindApproved(ctx context.Context) ([]models.Course, error)
	FindByInstructor(ctx context.Context, email string) ([]models.Course, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	Insert(ctx context.Context, course models.Course) (primitive.ObjectID, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) (int64, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error)
}

type SelectionStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Selection, error)
	FindByEmail(ctx context.Context, email string) ([]models.Selection, error)
	Insert(ctx context.Context, selection models.Selection) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// EnrollmentResult is the combined acknowledgment of the three sub-steps of
// a committed enrollment.
type EnrollmentResult struct {
	PaymentID    primitive.ObjectID `json:"insertedId"`
	DeletedCount int64              `json:"deletedCount"`
	Acknowledged bool               `json:"acknowledged"`
}

type PaymentStore interface {
	FindAll(ctx context.Context) ([]models.Payment, error)
	FindAllByDateDesc(ctx context.Context) ([]models.Payment, error)

	// CommitEnrollment atomically records the payment, consumes the
	// selection it references and moves the course counters
	// (seats -1, enrolled +1). A missing selection or course aborts the
	// whole commit; no partial effect survives.
	CommitEnrollment(ctx context.Context, payment models.Payment) (*EnrollmentResult, error)
}
