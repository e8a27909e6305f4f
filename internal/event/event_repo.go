package event

import (
	"context"
	"database/sql"

	"rikumates/internal/owner"

	"gorm.io/gorm"
)

//go:generate mockgen -source=event_repo.go -destination=mock/event_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, event *Event) error
	FindAllByUser(ctx context.Context, userID, companyID string) ([]Event, error)
	FindByIDAndUser(ctx context.Context, userID, id string) (*Event, error)
	CompanyExists(ctx context.Context, userID, companyID string) (bool, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to an open transaction so the event insert
// commits or rolls back together with the outbox row.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID, companyID string) ([]Event, error) {
	q := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Order("scheduled_at asc")

	if companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var events []Event
	err := q.Find(&events).Error
	return events, err
}

func (r *repository) FindByIDAndUser(ctx context.Context, userID, id string) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&event, "id = ?", id).Error
	return &event, err
}

func (r *repository) CompanyExists(ctx context.Context, userID, companyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("companies").
		Where("id = ?", companyID).
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Event{}, "id = ?", id).Error
}
