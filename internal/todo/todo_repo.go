package todo

import (
	"context"

	"rikumates/internal/owner"

	"gorm.io/gorm"
)

//go:generate mockgen -source=todo_repo.go -destination=mock/todo_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, todo *Todo) error
	FindAllByUser(ctx context.Context, userID, companyID string) ([]Todo, error)
	FindByIDAndUser(ctx context.Context, userID, id string) (*Todo, error)
	CompanyExists(ctx context.Context, userID, companyID string) (bool, error)
	Update(ctx context.Context, todo *Todo) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, todo *Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID, companyID string) ([]Todo, error) {
	q := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Order("due_date asc NULLS LAST, created_at asc")

	if companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var todos []Todo
	err := q.Find(&todos).Error
	return todos, err
}

func (r *repository) FindByIDAndUser(ctx context.Context, userID, id string) (*Todo, error) {
	var todo Todo
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&todo, "id = ?", id).Error
	return &todo, err
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

func (r *repository) Update(ctx context.Context, todo *Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Todo{}, "id = ?", id).Error
}
