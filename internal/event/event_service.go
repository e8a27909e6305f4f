package event

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	eventerrors "rikumates/internal/event/errors"
	"rikumates/internal/events"
	"rikumates/internal/messaging/kafka"
	"rikumates/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=event_service.go -destination=mock/event_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateEventRequest) (EventResponse, error)
	List(ctx context.Context, userID, companyID string) ([]EventResponse, error)
	GetByID(ctx context.Context, userID, id string) (EventResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateEventRequest) (EventResponse, error)
	Delete(ctx context.Context, userID, id string) (EventResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("event.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("event.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateEventRequest) (EventResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventID
	}

	companyID, err := s.resolveCompanyRef(ctx, userID, req.CompanyID)
	if err != nil {
		return EventResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create event begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EventResponse{}, err
	}
	defer tx.Rollback()

	evt := &Event{
		ID:          uuid.New(),
		UserID:      userUUID,
		CompanyID:   companyID,
		Title:       req.Title,
		Location:    req.Location,
		Notes:       req.Notes,
		ScheduledAt: req.ScheduledAt,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, evt); err != nil {
		s.logger.Error("create event persist failed",
			zap.String("request_id", rid),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return EventResponse{}, err
	}

	if s.outbox != nil {
		msg := events.EventScheduledMessage{
			EventType:   "event_scheduled",
			RequestID:   rid,
			EventID:     evt.ID.String(),
			UserID:      userID,
			Title:       evt.Title,
			ScheduledAt: evt.ScheduledAt,
			OccurredAt:  time.Now().UTC(),
		}
		if companyID != nil {
			msg.CompanyID = companyID.String()
		}

		payload, err := json.Marshal(msg)
		if err != nil {
			s.logger.Error("marshal event_scheduled failed", zap.String("request_id", rid), zap.Error(err))
			return EventResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "event",
			AggregateID:   evt.ID.String(),
			EventType:     msg.EventType,
			Topic:         events.EventScheduledTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create event outbox persist failed",
				zap.String("event_id", evt.ID.String()),
				zap.Error(err),
			)
			return EventResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create event commit failed", zap.String("request_id", rid), zap.Error(err))
		return EventResponse{}, err
	}

	s.logger.Info("create event success",
		zap.String("request_id", rid),
		zap.String("event_id", evt.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToResponse(*evt), nil
}

func (s *service) List(ctx context.Context, userID, companyID string) ([]EventResponse, error) {
	if companyID != "" {
		if _, err := uuid.Parse(companyID); err != nil {
			return nil, eventerrors.ErrCompanyNotFound
		}
	}

	evts, err := s.repo.FindAllByUser(ctx, userID, companyID)
	if err != nil {
		s.logger.Error("list events failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return mapToListResponse(evts), nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventID
	}

	evt, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return EventResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*evt), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateEventRequest) (EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventID
	}

	companyID, err := s.resolveCompanyRef(ctx, userID, req.CompanyID)
	if err != nil {
		return EventResponse{}, err
	}

	evt, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return EventResponse{}, mapRepositoryError(err)
	}

	evt.Title = req.Title
	evt.Location = req.Location
	evt.Notes = req.Notes
	evt.ScheduledAt = req.ScheduledAt
	evt.CompanyID = companyID

	if err := s.repo.Update(ctx, evt); err != nil {
		s.logger.Error("update event persist failed",
			zap.String("event_id", id),
			zap.Error(err),
		)
		return EventResponse{}, err
	}

	return mapToResponse(*evt), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) (EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EventResponse{}, eventerrors.ErrInvalidEventID
	}

	evt, err := s.repo.FindByIDAndUser(ctx, userID, id)
	if err != nil {
		return EventResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("delete event failed",
			zap.String("event_id", id),
			zap.Error(err),
		)
		return EventResponse{}, err
	}

	s.logger.Info("delete event success", zap.String("event_id", id))

	return mapToResponse(*evt), nil
}

// resolveCompanyRef verifies that a supplied company reference belongs to the
// caller before the event is attached to it.
func (s *service) resolveCompanyRef(ctx context.Context, userID string, companyID *string) (*uuid.UUID, error) {
	if companyID == nil || *companyID == "" {
		return nil, nil
	}

	companyUUID, err := uuid.Parse(*companyID)
	if err != nil {
		return nil, eventerrors.ErrCompanyNotFound
	}

	exists, err := s.repo.CompanyExists(ctx, userID, *companyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, eventerrors.ErrCompanyNotFound
	}

	return &companyUUID, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return eventerrors.ErrEventNotFound
	}
	return err
}

func mapToResponse(e Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Title:       e.Title,
		Location:    e.Location,
		Notes:       e.Notes,
		ScheduledAt: e.ScheduledAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.CompanyID != nil {
		cid := e.CompanyID.String()
		resp.CompanyID = &cid
	}
	return resp
}

func mapToListResponse(evts []Event) []EventResponse {
	resp := make([]EventResponse, len(evts))
	for i, e := range evts {
		resp[i] = mapToResponse(e)
	}
	return resp
}
