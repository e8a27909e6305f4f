package event_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rikumates/internal/event"
	eventerrors "rikumates/internal/event/errors"
	"rikumates/internal/events"
	"rikumates/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeEventRepository struct {
	withTxFn          func(tx *sql.Tx) event.Repository
	createFn          func(ctx context.Context, e *event.Event) error
	findAllByUserFn   func(ctx context.Context, userID, companyID string) ([]event.Event, error)
	findByIDAndUserFn func(ctx context.Context, userID, id string) (*event.Event, error)
	companyExistsFn   func(ctx context.Context, userID, companyID string) (bool, error)
	updateFn          func(ctx context.Context, e *event.Event) error
	deleteFn          func(ctx context.Context, userID, id string) error
}

func (f *fakeEventRepository) WithTx(tx *sql.Tx) event.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEventRepository) Create(ctx context.Context, e *event.Event) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEventRepository) FindAllByUser(ctx context.Context, userID, companyID string) ([]event.Event, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID, companyID)
	}
	return nil, nil
}

func (f *fakeEventRepository) FindByIDAndUser(ctx context.Context, userID, id string) (*event.Event, error) {
	if f.findByIDAndUserFn != nil {
		return f.findByIDAndUserFn(ctx, userID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventRepository) CompanyExists(ctx context.Context, userID, companyID string) (bool, error) {
	if f.companyExistsFn != nil {
		return f.companyExistsFn(ctx, userID, companyID)
	}
	return true, nil
}

func (f *fakeEventRepository) Update(ctx context.Context, e *event.Event) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEventRepository) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, id)
	}
	return nil
}

type fakeOutboxRepository struct {
	withTxFn      func(tx *sql.Tx) kafka.OutboxRepository
	createFn      func(ctx context.Context, event kafka.OutboxEvent) error
	listPendingFn func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error)
	markSentFn    func(ctx context.Context, id string) error
	markFailedFn  func(ctx context.Context, id string, reason string) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	if f.listPendingFn != nil {
		return f.listPendingFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	if f.markSentFn != nil {
		return f.markSentFn(ctx, id)
	}
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.markFailedFn != nil {
		return f.markFailedFn(ctx, id, reason)
	}
	return nil
}

type eventServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeEventRepository
	outbox  *fakeOutboxRepository
	service event.Service
}

func setupEventServiceTest(t *testing.T) *eventServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEventRepository{}
	outbox := &fakeOutboxRepository{}
	svc := event.NewServiceWithOutbox(db, repo, outbox)

	return &eventServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		outbox:  outbox,
		service: svc,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	scheduledAt := time.Now().UTC().AddDate(0, 0, 3).Truncate(time.Second)

	t.Run("success queues an outbox message in the same tx", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.createFn = func(ctx context.Context, e *event.Event) error {
			assert.Equal(t, uuid.MustParse(userID), e.UserID)
			assert.Equal(t, "一次面接", e.Title)
			assert.Nil(t, e.CompanyID)
			return nil
		}

		var queued kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, oe kafka.OutboxEvent) error {
			queued = oe
			return nil
		}

		resp, err := deps.service.Create(ctx, userID, event.CreateEventRequest{
			Title:       "一次面接",
			Location:    "渋谷オフィス",
			ScheduledAt: scheduledAt,
		})

		assert.NoError(t, err)
		assert.Equal(t, "一次面接", resp.Title)
		assert.Equal(t, userID, resp.UserID)

		assert.Equal(t, events.EventScheduledTopic, queued.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, queued.Status)
		assert.Equal(t, "event", queued.AggregateType)
		assert.Equal(t, resp.ID, queued.AggregateID)

		var msg events.EventScheduledMessage
		assert.NoError(t, json.Unmarshal(queued.Payload, &msg))
		assert.Equal(t, "event_scheduled", msg.EventType)
		assert.Equal(t, resp.ID, msg.EventID)
		assert.Equal(t, userID, msg.UserID)
		assert.True(t, msg.ScheduledAt.Equal(scheduledAt))

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success verifies company ownership", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		companyID := uuid.New().String()

		deps.repo.companyExistsFn = func(ctx context.Context, uid, cid string) (bool, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, companyID, cid)
			return true, nil
		}
		deps.repo.createFn = func(ctx context.Context, e *event.Event) error {
			assert.NotNil(t, e.CompanyID)
			assert.Equal(t, companyID, e.CompanyID.String())
			return nil
		}

		resp, err := deps.service.Create(ctx, userID, event.CreateEventRequest{
			Title:       "最終面接",
			Location:    "本社",
			ScheduledAt: scheduledAt,
			CompanyID:   &companyID,
		})

		assert.NoError(t, err)
		assert.Equal(t, companyID, *resp.CompanyID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative company not owned", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		companyID := uuid.New().String()
		deps.repo.companyExistsFn = func(ctx context.Context, uid, cid string) (bool, error) {
			return false, nil
		}
		deps.repo.createFn = func(ctx context.Context, e *event.Event) error {
			t.Fatal("create should not be called")
			return nil
		}

		_, err := deps.service.Create(ctx, userID, event.CreateEventRequest{
			Title:       "一次面接",
			Location:    "渋谷オフィス",
			ScheduledAt: scheduledAt,
			CompanyID:   &companyID,
		})

		assert.ErrorIs(t, err, eventerrors.ErrCompanyNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success event insert rides the outbox transaction", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
		assert.NoError(t, err)

		svc := event.NewServiceWithOutbox(db, event.NewRepository(gormDB), kafka.NewOutboxRepository(db))

		returnedID := uuid.New()
		sqlMock.ExpectBegin()
		sqlMock.ExpectQuery(`INSERT INTO "events"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(returnedID.String()))
		sqlMock.ExpectExec("INSERT INTO outbox_events").
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectCommit()

		resp, err := svc.Create(ctx, userID, event.CreateEventRequest{
			Title:       "一次面接",
			Location:    "渋谷オフィス",
			ScheduledAt: scheduledAt,
		})

		assert.NoError(t, err)
		assert.Equal(t, "一次面接", resp.Title)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative outbox failure rolls back", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.outbox.createFn = func(ctx context.Context, oe kafka.OutboxEvent) error {
			return errors.New("outbox insert failed")
		}

		_, err := deps.service.Create(ctx, userID, event.CreateEventRequest{
			Title:       "一次面接",
			Location:    "渋谷オフィス",
			ScheduledAt: scheduledAt,
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success passes the optional company filter", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		companyID := uuid.New().String()
		deps.repo.findAllByUserFn = func(ctx context.Context, uid, cid string) ([]event.Event, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, companyID, cid)
			return []event.Event{
				{ID: uuid.New(), UserID: uuid.MustParse(userID), Title: "説明会", Location: "オンライン"},
			}, nil
		}

		resp, err := deps.service.List(ctx, userID, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "説明会", resp[0].Title)
	})

	t.Run("negative malformed company filter", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.List(ctx, userID, "not-a-uuid")

		assert.ErrorIs(t, err, eventerrors.ErrCompanyNotFound)
	})
}

func TestEventService_GetByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("negative scoped miss maps to not found", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, userID, uuid.New().String())

		assert.ErrorIs(t, err, eventerrors.ErrEventNotFound)
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	id := uuid.New()

	t.Run("success replaces the full record", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndUserFn = func(ctx context.Context, uid, targetID string) (*event.Event, error) {
			return &event.Event{
				ID:          id,
				UserID:      uuid.MustParse(userID),
				Title:       "旧タイトル",
				Location:    "旧会場",
				ScheduledAt: time.Now().UTC(),
			}, nil
		}

		var saved *event.Event
		deps.repo.updateFn = func(ctx context.Context, e *event.Event) error {
			saved = e
			return nil
		}

		newTime := time.Now().UTC().AddDate(0, 0, 5)
		resp, err := deps.service.Update(ctx, userID, id.String(), event.UpdateEventRequest{
			Title:       "新タイトル",
			Location:    "新会場",
			ScheduledAt: newTime,
		})

		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.Equal(t, "新タイトル", saved.Title)
		assert.Equal(t, "新タイトル", resp.Title)
		assert.Nil(t, saved.CompanyID)
	})

	t.Run("negative not owned performs no mutation", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		deps.repo.updateFn = func(ctx context.Context, e *event.Event) error {
			t.Fatal("update should not be called")
			return nil
		}

		_, err := deps.service.Update(ctx, userID, id.String(), event.UpdateEventRequest{
			Title:       "新タイトル",
			Location:    "新会場",
			ScheduledAt: time.Now().UTC(),
		})

		assert.ErrorIs(t, err, eventerrors.ErrEventNotFound)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	id := uuid.New()

	t.Run("success returns the deleted row", func(t *testing.T) {
		deps := setupEventServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndUserFn = func(ctx context.Context, uid, targetID string) (*event.Event, error) {
			return &event.Event{ID: id, UserID: uuid.MustParse(userID), Title: "面談"}, nil
		}
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, uid, targetID string) error {
			deleted = true
			return nil
		}

		resp, err := deps.service.Delete(ctx, userID, id.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, "面談", resp.Title)
	})
}
