package todo

import (
	"context"
	"errors"

	todoerrors "rikumates/internal/todo/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=todo_service.go -destination=mock/todo_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateTodoRequest) (TodoResponse, error)
	CreateReminder(ctx context.Context, userID string, input ReminderInput) (TodoResponse, error)
	List(ctx context.Context, userID, companyID string) ([]TodoResponse, error)
	GetByID(ctx context.Context, userID, id string) (TodoResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateTodoRequest) (TodoResponse, error)
	Delete(ctx context.Context, userID, id string) (TodoResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("todo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("todo.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, userID string, req CreateTodoRequest) (TodoResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TodoResponse{}, todoerrors.ErrInvalidTodoID
	}

	companyID, err := s.resolveCompanyRef(ctx, userID, req.CompanyID)
	if err != nil {
		return TodoResponse{}, err
	}

	t := &Todo{
		ID:        uuid.New(),
		UserID:    userUUID,
		CompanyID: companyID,
		TaskName:  req.TaskName,
		Notes:     req.Notes,
		DueDate:   req.DueDate,
		Completed: req.Completed,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create todo persist failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return TodoResponse{}, err
	}

	s.logger.Info("create todo success",
		zap.String("todo_id", t.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToResponse(*t), nil
}

// CreateReminder records a preparation todo spawned by a scheduled event.
// Uniqueness on the source event makes redelivered messages a no-op at the
// datastore level; the caller decides how to treat the violation.
func (s *service) CreateReminder(ctx context.Context, userID string, input ReminderInput) (TodoResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TodoResponse{}, todoerrors.ErrInvalidTodoID
	}

	eventUUID, err := uuid.Parse(input.EventID)
	if err != nil {
		return TodoResponse{}, todoerrors.ErrInvalidTodoID
	}

	t := &Todo{
		ID:            uuid.New(),
		UserID:        userUUID,
		TaskName:      input.TaskName,
		DueDate:       &input.DueDate,
		SourceEventID: &eventUUID,
	}

	if input.CompanyID != "" {
		companyUUID, err := uuid.Parse(input.CompanyID)
		if err == nil {
			t.CompanyID = &companyUUID
		}
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return TodoResponse{}, err
	}

	s.logger.Info("create reminder todo success",
		zap.String("todo_id", t.ID.String()),
		zap.String("source_event_id", input.EventID),
	)

	return mapToResponse(*t), nil
}

func (s *service) List(ctx context.Context, userID, companyID string) ([]TodoResponse, error) {
	if companyID != "" {
		if _, err := uuid.Parse(companyID); err != nil {
			return nil, todoerrors.ErrCompanyNotFound
		}
	}

	todos, err := s.repo.FindAllByUser(ctx, userID, companyID)
	if err != nil {
		s.logger.Error("list todos failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return mapToListResponse(todos), nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (TodoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TodoResponse{}, todoerrors.ErrInvalidTodoID
	}

	t, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return TodoResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateTodoRequest) (TodoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TodoResponse{}, todoerrors.ErrInvalidTodoID
	}

	companyID, err := s.resolveCompanyRef(ctx, userID, req.CompanyID)
	if err != nil {
		return TodoResponse{}, err
	}

	t, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return TodoResponse{}, mapRepositoryError(err)
	}

	t.TaskName = req.TaskName
	t.Notes = req.Notes
	t.DueDate = req.DueDate
	t.Completed = req.Completed
	t.CompanyID = companyID

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update todo persist failed",
			zap.String("todo_id", id),
			zap.Error(err),
		)
		return TodoResponse{}, err
	}

	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) (TodoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TodoResponse{}, todoerrors.ErrInvalidTodoID
	}

	t, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return TodoResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("delete todo failed",
			zap.String("todo_id", id),
			zap.Error(err),
		)
		return TodoResponse{}, err
	}

	s.logger.Info("delete todo success", zap.String("todo_id", id))

	return mapToResponse(*t), nil
}

func (s *service) resolveCompanyRef(ctx context.Context, userID string, companyID *string) (*uuid.UUID, error) {
	if companyID == nil || *companyID == "" {
		return nil, nil
	}

	companyUUID, err := uuid.Parse(*companyID)
	if err != nil {
		return nil, todoerrors.ErrCompanyNotFound
	}

	exists, err := s.repo.CompanyExists(ctx, userID, *companyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, todoerrors.ErrCompanyNotFound
	}

	return &companyUUID, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return todoerrors.ErrTodoNotFound
	}
	return err
}

func mapToResponse(t Todo) TodoResponse {
	resp := TodoResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		TaskName:  t.TaskName,
		Notes:     t.Notes,
		DueDate:   t.DueDate,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.CompanyID != nil {
		cid := t.CompanyID.String()
		resp.CompanyID = &cid
	}
	return resp
}

func mapToListResponse(todos []Todo) []TodoResponse {
	resp := make([]TodoResponse, len(todos))
	for i, t := range todos {
		resp[i] = mapToResponse(t)
	}
	return resp
}
