package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
)

func TestCommitEnrollment(t *testing.T) {
	ctx := context.Background()
	st := New()

	courseID, err := st.Courses().Insert(ctx, models.Course{
		ClassName: "Spanish 101",
		Seats:     5,
		Enrolled:  10,
		Status:    models.StatusApproved,
	})
	if err != nil {
		t.Fatalf("inserting course: %v", err)
	}
	selectionID, err := st.Selections().Insert(ctx, models.Selection{
		Email:   "student@example.com",
		ClassID: courseID.Hex(),
	})
	if err != nil {
		t.Fatalf("inserting selection: %v", err)
	}

	payment := models.Payment{
		Email:       "student@example.com",
		SelectItems: selectionID.Hex(),
		ClassItems:  courseID.Hex(),
		Date:        time.Now(),
	}

	result, err := st.Payments().CommitEnrollment(ctx, payment)
	if err != nil {
		t.Fatalf("CommitEnrollment failed: %v", err)
	}
	if !result.Acknowledged || result.DeletedCount != 1 {
		t.Errorf("unexpected result: %+v", result)
	}

	course, err := st.Courses().FindByID(ctx, courseID)
	if err != nil {
		t.Fatalf("fetching course: %v", err)
	}
	if course.Seats != 4 || course.Enrolled != 11 {
		t.Errorf("expected seats=4 enrolled=11, got seats=%d enrolled=%d", course.Seats, course.Enrolled)
	}
	if _, err := st.Selections().FindByID(ctx, selectionID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected selection to be consumed, got %v", err)
	}
	records, _ := st.Payments().FindAll(ctx)
	if len(records) != 1 {
		t.Fatalf("expected exactly one payment record, got %d", len(records))
	}

	// Replaying the same selection must not decrement seats again.
	if _, err := st.Payments().CommitEnrollment(ctx, payment); !errors.Is(err, store.ErrSelectionNotFound) {
		t.Fatalf("expected ErrSelectionNotFound on replay, got %v", err)
	}
	course, _ = st.Courses().FindByID(ctx, courseID)
	if course.Seats != 4 || course.Enrolled != 11 {
		t.Errorf("replay changed counters: seats=%d enrolled=%d", course.Seats, course.Enrolled)
	}
	records, _ = st.Payments().FindAll(ctx)
	if len(records) != 1 {
		t.Errorf("replay recorded a payment: got %d records", len(records))
	}
}

func TestCommitEnrollmentMissingCourseLeavesNoPartialEffect(t *testing.T) {
	ctx := context.Background()
	st := New()

	selectionID, err := st.Selections().Insert(ctx, models.Selection{Email: "student@example.com"})
	if err != nil {
		t.Fatalf("inserting selection: %v", err)
	}

	payment := models.Payment{
		SelectItems: selectionID.Hex(),
		ClassItems:  primitive.NewObjectID().Hex(),
	}
	if _, err := st.Payments().CommitEnrollment(ctx, payment); !errors.Is(err, store.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}

	// The selection survives and no payment was recorded.
	if _, err := st.Selections().FindByID(ctx, selectionID); err != nil {
		t.Errorf("selection should survive an aborted commit: %v", err)
	}
	records, _ := st.Payments().FindAll(ctx)
	if len(records) != 0 {
		t.Errorf("aborted commit recorded %d payments", len(records))
	}
}

func TestFindAllByDateDesc(t *testing.T) {
	ctx := context.Background()
	st := New()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{1, 3, 2} {
		courseID, _ := st.Courses().Insert(ctx, models.Course{Seats: 1})
		selectionID, _ := st.Selections().Insert(ctx, models.Selection{Email: "s@example.com"})
		payment := models.Payment{
			TransactionID: "tx",
			Date:          base.AddDate(0, 0, offset),
			SelectItems:   selectionID.Hex(),
			ClassItems:    courseID.Hex(),
		}
		if _, err := st.Payments().CommitEnrollment(ctx, payment); err != nil {
			t.Fatalf("commit: %v", err)
		}
	}

	history, err := st.Payments().FindAllByDateDesc(ctx)
	if err != nil {
		t.Fatalf("FindAllByDateDesc: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Date.After(history[i-1].Date) {
			t.Errorf("history not sorted newest first at index %d", i)
		}
	}
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	st := New()

	id, err := st.Users().Insert(ctx, models.User{Email: "user@example.com"})
	if err != nil {
		t.Fatalf("inserting user: %v", err)
	}

	modified, err := st.Users().UpdateRole(ctx, id, models.RoleInstructor)
	if err != nil || modified != 1 {
		t.Fatalf("expected 1 modification, got %d (%v)", modified, err)
	}
	// Re-applying the same role is a no-op, not an error.
	modified, err = st.Users().UpdateRole(ctx, id, models.RoleInstructor)
	if err != nil || modified != 0 {
		t.Fatalf("expected idempotent no-op, got %d (%v)", modified, err)
	}

	if _, err := st.Users().UpdateRole(ctx, primitive.NewObjectID(), models.RoleAdmin); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}
