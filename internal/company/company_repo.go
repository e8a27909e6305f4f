package company

import (
	"context"
	"fmt"
	"time"

	"rikumates/internal/owner"

	"gorm.io/gorm"
)

// nextEventExpr computes the earliest upcoming event for each company row.
// Postgres cannot order the outer query by a joined column in this design, so
// the value is surfaced as a derived column instead.
const nextEventExpr = "(SELECT MIN(e.scheduled_at) FROM events e" +
	" WHERE e.company_id = companies.id AND e.deleted_at IS NULL AND e.scheduled_at >= ?)"

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, company *Company) error
	List(ctx context.Context, userID string, p ListParams, now time.Time) ([]Company, int64, error)
	FindByIDAndUser(ctx context.Context, userID, id string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// List applies the owner scope plus the optional search, status and
// next-event-window predicates, then pages with offset/limit. The derived
// next_event_date sort fetches in created_at order; the service reorders in
// memory.
func (r *repository) List(ctx context.Context, userID string, p ListParams, now time.Time) ([]Company, int64, error) {
	base := r.db.WithContext(ctx).Model(&Company{}).Scopes(owner.Scope(userID))

	if p.Query != "" {
		pattern := "%" + p.Query + "%"
		base = base.Where("name ILIKE ? OR industry ILIKE ?", pattern, pattern)
	}

	if p.RecruitmentStatus != "" && p.RecruitmentStatus != FilterAll {
		base = base.Where("status = ?", p.RecruitmentStatus)
	}

	if p.NextEvent != "" && p.NextEvent != FilterAll {
		base = base.Where(nextEventExpr+" BETWEEN ? AND ?", now, now, p.WindowEnd(now))
	}

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	sortColumn := p.Sort
	if sortColumn == SortNextEventDate {
		sortColumn = "created_at"
	}

	var companies []Company
	err := base.
		Select("companies.*, "+nextEventExpr+" AS next_event_at", now).
		Order(fmt.Sprintf("%s %s", sortColumn, p.Order)).
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, count, nil
}

func (r *repository) FindByIDAndUser(ctx context.Context, userID, id string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&company, "id = ?", id).Error
	return &company, err
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Company{}, "id = ?", id).Error
}
