// Package memstore is an in-memory implementation of the store interfaces
// for tests. It mirrors mongostore semantics, including the all-or-nothing
// enrollment commit, behind a single mutex.
package memstore

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
)

type Store struct {
	mu         sync.Mutex
	users      []models.User
	courses    []models.Course
	selections []models.Selection
	payments   []models.Payment
}

func New() *Store {
	return &Store{}
}

func (s *Store) Users() *UserStore           { return &UserStore{s} }
func (s *Store) Courses() *CourseStore       { return &CourseStore{s} }
func (s *Store) Selections() *SelectionStore { return &SelectionStore{s} }
func (s *Store) Payments() *PaymentStore     { return &PaymentStore{s} }

type UserStore struct{ s *Store }

func (u *UserStore) FindAll(ctx context.Context) ([]models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return append([]models.User{}, u.s.users...), nil
}

func (u *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, user := range u.s.users {
		if user.Email == email {
			user := user
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *UserStore) FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	matched := []models.User{}
	for _, user := range u.s.users {
		if user.Role == role {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

func (u *UserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	u.s.users = append(u.s.users, user)
	return user.ID, nil
}

func (u *UserStore) UpdateRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (int64, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			if u.s.users[i].Role == role {
				return 0, nil
			}
			u.s.users[i].Role = role
			return 1, nil
		}
	}
	return 0, store.ErrNotFound
}

type CourseStore struct{ s *Store }

func (c *CourseStore) FindAll(ctx context.Context) ([]models.Course, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return append([]models.Course{}, c.s.courses...), nil
}

func (c *CourseStore) FindApproved(ctx context.Context) ([]models.Course, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	matched := []models.Course{}
	for _, course := range c.s.courses {
		if course.Status == models.StatusApproved {
			matched = append(matched, course)
		}
	}
	return matched, nil
}

func (c *CourseStore) FindByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	matched := []models.Course{}
	for _, course := range c.s.courses {
		if course.InstructorEmail == email {
			matched = append(matched, course)
		}
	}
	return matched, nil
}

func (c *CourseStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if course := c.s.findByID(id); course != nil {
		copied := *course
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (c *CourseStore) Insert(ctx context.Context, course models.Course) (primitive.ObjectID, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	c.s.courses = append(c.s.courses, course)
	return course.ID, nil
}

func (c *CourseStore) SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) (int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	course := c.s.findByID(id)
	if course == nil {
		return 0, store.ErrNotFound
	}
	if course.Status == status {
		return 0, nil
	}
	course.Status = status
	return 1, nil
}

func (c *CourseStore) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	course := c.s.findByID(id)
	if course == nil {
		return 0, store.ErrNotFound
	}
	if course.Feedback == feedback {
		return 0, nil
	}
	course.Feedback = feedback
	return 1, nil
}

type SelectionStore struct{ s *Store }

func (l *SelectionStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Selection, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	for _, selection := range l.s.selections {
		if selection.ID == id {
			selection := selection
			return &selection, nil
		}
	}
	return nil, store.ErrNotFound
}

func (l *SelectionStore) FindByEmail(ctx context.Context, email string) ([]models.Selection, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	matched := []models.Selection{}
	for _, selection := range l.s.selections {
		if selection.Email == email {
			matched = append(matched, selection)
		}
	}
	return matched, nil
}

func (l *SelectionStore) Insert(ctx context.Context, selection models.Selection) (primitive.ObjectID, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if selection.ID.IsZero() {
		selection.ID = primitive.NewObjectID()
	}
	l.s.selections = append(l.s.selections, selection)
	return selection.ID, nil
}

func (l *SelectionStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.deleteSelection(id), nil
}

type PaymentStore struct{ s *Store }

func (p *PaymentStore) FindAll(ctx context.Context) ([]models.Payment, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return append([]models.Payment{}, p.s.payments...), nil
}

func (p *PaymentStore) FindAllByDateDesc(ctx context.Context) ([]models.Payment, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	sorted := append([]models.Payment{}, p.s.payments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted, nil
}

// CommitEnrollment validates both referenced documents before mutating
// anything, so a failed commit leaves no partial effect, matching the
// mongostore transaction.
func (p *PaymentStore) CommitEnrollment(ctx context.Context, payment models.Payment) (*store.EnrollmentResult, error) {
	selectionID, err := primitive.ObjectIDFromHex(payment.SelectItems)
	if err != nil {
		return nil, store.ErrSelectionNotFound
	}
	courseID, err := primitive.ObjectIDFromHex(payment.ClassItems)
	if err != nil {
		return nil, store.ErrCourseNotFound
	}

	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	hasSelection := false
	for _, selection := range p.s.selections {
		if selection.ID == selectionID {
			hasSelection = true
			break
		}
	}
	if !hasSelection {
		return nil, store.ErrSelectionNotFound
	}
	course := p.s.findByID(courseID)
	if course == nil {
		return nil, store.ErrCourseNotFound
	}

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	p.s.payments = append(p.s.payments, payment)
	deleted := p.s.deleteSelection(selectionID)
	course.Seats--
	course.Enrolled++

	return &store.EnrollmentResult{
		PaymentID:    payment.ID,
		DeletedCount: deleted,
		Acknowledged: true,
	}, nil
}

func (s *Store) findByID(id primitive.ObjectID) *models.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i]
		}
	}
	return nil
}

func (s *Store) deleteSelection(id primitive.ObjectID) int64 {
	for i, selection := range s.selections {
		if selection.ID == id {
			s.selections = append(s.selections[:i], s.selections[i+1:]...)
			return 1
		}
	}
	return 0
}
