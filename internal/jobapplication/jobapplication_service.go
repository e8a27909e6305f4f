package jobapplication

import (
	"context"
	"errors"

	jobapplicationerrors "rikumates/internal/jobapplication/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=jobapplication_service.go -destination=mock/jobapplication_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID, companyID string, req CreateJobApplicationRequest) (JobApplicationResponse, error)
	List(ctx context.Context, userID, companyID string) ([]JobApplicationResponse, error)
	GetByID(ctx context.Context, userID, id string) (JobApplicationResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateJobApplicationRequest) (JobApplicationResponse, error)
	Delete(ctx context.Context, userID, id string) (JobApplicationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("jobapplication.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jobapplication.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, userID, companyID string, req CreateJobApplicationRequest) (JobApplicationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return JobApplicationResponse{}, jobapplicationerrors.ErrInvalidApplicationID
	}

	companyUUID, err := s.resolveCompany(ctx, userID, companyID)
	if err != nil {
		return JobApplicationResponse{}, err
	}

	app := &JobApplication{
		ID:        uuid.New(),
		UserID:    userUUID,
		CompanyID: companyUUID,
		Status:    req.Status,
		AppliedAt: req.AppliedAt,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.logger.Error("create job application persist failed",
			zap.String("user_id", userID),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return JobApplicationResponse{}, err
	}

	s.logger.Info("create job application success",
		zap.String("application_id", app.ID.String()),
		zap.String("company_id", companyID),
	)

	return mapToResponse(*app), nil
}

func (s *service) List(ctx context.Context, userID, companyID string) ([]JobApplicationResponse, error) {
	if companyID != "" {
		if _, err := uuid.Parse(companyID); err != nil {
			return nil, jobapplicationerrors.ErrCompanyNotFound
		}
	}

	apps, err := s.repo.FindAllByUser(ctx, userID, companyID)
	if err != nil {
		s.logger.Error("list job applications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return mapToListResponse(apps), nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (JobApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobApplicationResponse{}, jobapplicationerrors.ErrInvalidApplicationID
	}

	app, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return JobApplicationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*app), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateJobApplicationRequest) (JobApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobApplicationResponse{}, jobapplicationerrors.ErrInvalidApplicationID
	}

	companyUUID, err := s.resolveCompany(ctx, userID, req.CompanyID)
	if err != nil {
		return JobApplicationResponse{}, err
	}

	app, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return JobApplicationResponse{}, mapRepositoryError(err)
	}

	app.CompanyID = companyUUID
	app.Status = req.Status
	app.AppliedAt = req.AppliedAt
	app.Notes = req.Notes

	if err := s.repo.Update(ctx, app); err != nil {
		s.logger.Error("update job application persist failed",
			zap.String("application_id", id),
			zap.Error(err),
		)
		return JobApplicationResponse{}, err
	}

	return mapToResponse(*app), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) (JobApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobApplicationResponse{}, jobapplicationerrors.ErrInvalidApplicationID
	}

	app, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return JobApplicationResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("delete job application failed",
			zap.String("application_id", id),
			zap.Error(err),
		)
		return JobApplicationResponse{}, err
	}

	s.logger.Info("delete job application success", zap.String("application_id", id))

	return mapToResponse(*app), nil
}

func (s *service) resolveCompany(ctx context.Context, userID, companyID string) (uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, jobapplicationerrors.ErrCompanyNotFound
	}

	exists, err := s.repo.CompanyExists(ctx, userID, companyID)
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, jobapplicationerrors.ErrCompanyNotFound
	}

	return companyUUID, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return jobapplicationerrors.ErrApplicationNotFound
	}
	return err
}

func mapToResponse(a JobApplication) JobApplicationResponse {
	return JobApplicationResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		CompanyID: a.CompanyID.String(),
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func mapToListResponse(apps []JobApplication) []JobApplicationResponse {
	resp := make([]JobApplicationResponse, len(apps))
	for i, a := range apps {
		resp[i] = mapToResponse(a)
	}
	return resp
}
