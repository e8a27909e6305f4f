package jobapplication

import (
	"context"

	"rikumates/internal/owner"

	"gorm.io/gorm"
)

//go:generate mockgen -source=jobapplication_repo.go -destination=mock/jobapplication_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, app *JobApplication) error
	FindAllByUser(ctx context.Context, userID, companyID string) ([]JobApplication, error)
	FindByIDAndUser(ctx context.Context, userID, id string) (*JobApplication, error)
	CompanyExists(ctx context.Context, userID, companyID string) (bool, error)
	Update(ctx context.Context, app *JobApplication) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, app *JobApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID, companyID string) ([]JobApplication, error) {
	q := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Order("created_at desc")

	if companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var apps []JobApplication
	err := q.Find(&apps).Error
	return apps, err
}

func (r *repository) FindByIDAndUser(ctx context.Context, userID, id string) (*JobApplication, error) {
	var app JobApplication
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&app, "id = ?", id).Error
	return &app, err
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

func (r *repository) Update(ctx context.Context, app *JobApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&JobApplication{}, "id = ?", id).Error
}
