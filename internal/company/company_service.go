package company

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	companyerrors "rikumates/internal/company/errors"
	"rikumates/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateCompanyRequest) (CompanyResponse, error)
	List(ctx context.Context, userID string, p ListParams) (CompanyListResult, error)
	GetByID(ctx context.Context, userID, id string) (CompanyResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, userID, id string) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, userID string, req CreateCompanyRequest) (CompanyResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	if err := validateOptionalFields(req.Status, req.Location, req.WebsiteURL); err != nil {
		return CompanyResponse{}, err
	}

	comp := &Company{
		ID:         uuid.New(),
		UserID:     userUUID,
		Name:       req.Name,
		Industry:   req.Industry,
		Notes:      req.Notes,
		WebsiteURL: normalizeOptional(req.WebsiteURL),
		Location:   normalizeOptional(req.Location),
		Status:     req.Status,
	}
	if comp.Status == "" {
		comp.Status = StatusPreEntry
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		s.logger.Error("create company persist failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return CompanyResponse{}, err
	}

	s.logger.Info("create company success",
		zap.String("company_id", comp.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToResponse(*comp), nil
}

func (s *service) List(ctx context.Context, userID string, p ListParams) (CompanyListResult, error) {
	now := time.Now().UTC()

	companies, count, err := s.repo.List(ctx, userID, p, now)
	if err != nil {
		s.logger.Error("list companies failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return CompanyListResult{}, err
	}

	if p.Sort == SortNextEventDate {
		sortByNextEvent(companies, p.Order)
	}

	return CompanyListResult{
		Companies:  mapToListResponse(companies),
		TotalPages: response.TotalPages(count, p.PerPage),
		Page:       p.Page,
	}, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	if err := validateOptionalFields(req.Status, req.Location, req.WebsiteURL); err != nil {
		return CompanyResponse{}, err
	}

	comp, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	comp.Name = req.Name
	comp.Industry = req.Industry
	comp.Status = req.Status
	comp.Location = normalizeOptional(req.Location)
	comp.WebsiteURL = normalizeOptional(req.WebsiteURL)
	comp.Notes = req.Notes

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company persist failed",
			zap.String("company_id", id),
			zap.Error(err),
		)
		return CompanyResponse{}, err
	}

	return mapToResponse(*comp), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("delete company failed",
			zap.String("company_id", id),
			zap.Error(err),
		)
		return CompanyResponse{}, err
	}

	s.logger.Info("delete company success", zap.String("company_id", id))

	return mapToResponse(*comp), nil
}

// sortByNextEvent reorders a fetched page by the derived next-event
// timestamp. Rows without an upcoming event sort to the tail in ascending
// order and to the head in descending order, mirroring nulls-last /
// nulls-first tied to direction. The sort is stable so the underlying
// created_at order breaks ties.
func sortByNextEvent(companies []Company, order string) {
	asc := order == "asc"
	sort.SliceStable(companies, func(i, j int) bool {
		a, b := companies[i].NextEventAt, companies[j].NextEventAt

		if a == nil && b == nil {
			return false
		}
		if a == nil {
			return !asc
		}
		if b == nil {
			return asc
		}
		if asc {
			return a.Before(*b)
		}
		return b.Before(*a)
	})
}

// normalizeOptional maps an omitted or blank optional field to NULL so an
// update can clear the column instead of storing "".
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func validateOptionalFields(status string, location, websiteURL *string) error {
	if status != "" && !IsValidStatus(status) {
		return companyerrors.ErrInvalidStatus
	}
	if location != nil && *location != "" && !IsValidPrefecture(*location) {
		return companyerrors.ErrInvalidLocation
	}
	if websiteURL != nil && *websiteURL != "" {
		if !strings.HasPrefix(*websiteURL, "http://") && !strings.HasPrefix(*websiteURL, "https://") {
			return companyerrors.ErrInvalidWebsiteURL
		}
	}
	return nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		Name:        c.Name,
		Industry:    c.Industry,
		Status:      c.Status,
		WebsiteURL:  c.WebsiteURL,
		Location:    c.Location,
		Notes:       c.Notes,
		NextEventAt: c.NextEventAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = mapToResponse(c)
	}
	return resp
}
