package todo_test

import (
	"context"
	"testing"
	"time"

	"rikumates/internal/todo"
	todoerrors "rikumates/internal/todo/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTodoRepository struct {
	createFn          func(ctx context.Context, t *todo.Todo) error
	findAllByUserFn   func(ctx context.Context, userID, companyID string) ([]todo.Todo, error)
	findByIDAndUserFn func(ctx context.Context, userID, id string) (*todo.Todo, error)
	companyExistsFn   func(ctx context.Context, userID, companyID string) (bool, error)
	updateFn          func(ctx context.Context, t *todo.Todo) error
	deleteFn          func(ctx context.Context, userID, id string) error
}

func (f *fakeTodoRepository) Create(ctx context.Context, t *todo.Todo) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTodoRepository) FindAllByUser(ctx context.Context, userID, companyID string) ([]todo.Todo, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID, companyID)
	}
	return nil, nil
}

func (f *fakeTodoRepository) FindByIDAndUser(ctx context.Context, userID, id string) (*todo.Todo, error) {
	if f.findByIDAndUserFn != nil {
		return f.findByIDAndUserFn(ctx, userID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTodoRepository) CompanyExists(ctx context.Context, userID, companyID string) (bool, error) {
	if f.companyExistsFn != nil {
		return f.companyExistsFn(ctx, userID, companyID)
	}
	return true, nil
}

func (f *fakeTodoRepository) Update(ctx context.Context, t *todo.Todo) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTodoRepository) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, id)
	}
	return nil
}

func TestTodoService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success stamps owner", func(t *testing.T) {
		repo := &fakeTodoRepository{}
		repo.createFn = func(ctx context.Context, td *todo.Todo) error {
			assert.Equal(t, uuid.MustParse(userID), td.UserID)
			assert.Equal(t, "ES提出", td.TaskName)
			assert.False(t, td.Completed)
			assert.Nil(t, td.SourceEventID)
			return nil
		}
		svc := todo.NewService(repo)

		resp, err := svc.Create(ctx, userID, todo.CreateTodoRequest{TaskName: "ES提出"})

		assert.NoError(t, err)
		assert.Equal(t, "ES提出", resp.TaskName)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("negative company not owned", func(t *testing.T) {
		companyID := uuid.New().String()
		repo := &fakeTodoRepository{}
		repo.companyExistsFn = func(ctx context.Context, uid, cid string) (bool, error) {
			return false, nil
		}
		repo.createFn = func(ctx context.Context, td *todo.Todo) error {
			t.Fatal("create should not be called")
			return nil
		}
		svc := todo.NewService(repo)

		_, err := svc.Create(ctx, userID, todo.CreateTodoRequest{
			TaskName:  "ES提出",
			CompanyID: &companyID,
		})

		assert.ErrorIs(t, err, todoerrors.ErrCompanyNotFound)
	})
}

func TestTodoService_CreateReminder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	eventID := uuid.New().String()
	companyID := uuid.New().String()
	due := time.Now().UTC().AddDate(0, 0, 2)

	t.Run("success links the source event", func(t *testing.T) {
		repo := &fakeTodoRepository{}
		repo.createFn = func(ctx context.Context, td *todo.Todo) error {
			assert.Equal(t, uuid.MustParse(userID), td.UserID)
			assert.Equal(t, "「一次面接」の準備", td.TaskName)
			assert.NotNil(t, td.SourceEventID)
			assert.Equal(t, eventID, td.SourceEventID.String())
			assert.NotNil(t, td.CompanyID)
			assert.Equal(t, companyID, td.CompanyID.String())
			assert.NotNil(t, td.DueDate)
			assert.True(t, td.DueDate.Equal(due))
			return nil
		}
		svc := todo.NewService(repo)

		resp, err := svc.CreateReminder(ctx, userID, todo.ReminderInput{
			EventID:   eventID,
			CompanyID: companyID,
			TaskName:  "「一次面接」の準備",
			DueDate:   due,
		})

		assert.NoError(t, err)
		assert.Equal(t, "「一次面接」の準備", resp.TaskName)
	})

	t.Run("success without company reference", func(t *testing.T) {
		repo := &fakeTodoRepository{}
		repo.createFn = func(ctx context.Context, td *todo.Todo) error {
			assert.Nil(t, td.CompanyID)
			return nil
		}
		svc := todo.NewService(repo)

		_, err := svc.CreateReminder(ctx, userID, todo.ReminderInput{
			EventID:  eventID,
			TaskName: "「説明会」の準備",
			DueDate:  due,
		})

		assert.NoError(t, err)
	})
}

func TestTodoService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	id := uuid.New()

	t.Run("success toggles completion", func(t *testing.T) {
		repo := &fakeTodoRepository{}
		repo.findByIDAndUserFn = func(ctx context.Context, uid, targetID string) (*todo.Todo, error) {
			return &todo.Todo{ID: id, UserID: uuid.MustParse(userID), TaskName: "ES提出"}, nil
		}
		var saved *todo.Todo
		repo.updateFn = func(ctx context.Context, td *todo.Todo) error {
			saved = td
			return nil
		}
		svc := todo.NewService(repo)

		resp, err := svc.Update(ctx, userID, id.String(), todo.UpdateTodoRequest{
			TaskName:  "ES提出",
			Completed: true,
		})

		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.True(t, saved.Completed)
		assert.True(t, resp.Completed)
	})

	t.Run("negative not owned performs no mutation", func(t *testing.T) {
		repo := &fakeTodoRepository{}
		repo.updateFn = func(ctx context.Context, td *todo.Todo) error {
			t.Fatal("update should not be called")
			return nil
		}
		svc := todo.NewService(repo)

		_, err := svc.Update(ctx, userID, id.String(), todo.UpdateTodoRequest{TaskName: "ES提出"})

		assert.ErrorIs(t, err, todoerrors.ErrTodoNotFound)
	})
}

func TestTodoService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success with company filter", func(t *testing.T) {
		companyID := uuid.New().String()
		repo := &fakeTodoRepository{}
		repo.findAllByUserFn = func(ctx context.Context, uid, cid string) ([]todo.Todo, error) {
			assert.Equal(t, companyID, cid)
			return []todo.Todo{
				{ID: uuid.New(), UserID: uuid.MustParse(userID), TaskName: "面接対策"},
			}, nil
		}
		svc := todo.NewService(repo)

		resp, err := svc.List(ctx, userID, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "面接対策", resp[0].TaskName)
	})

	t.Run("negative malformed company filter", func(t *testing.T) {
		svc := todo.NewService(&fakeTodoRepository{})

		_, err := svc.List(ctx, userID, "not-a-uuid")

		assert.ErrorIs(t, err, todoerrors.ErrCompanyNotFound)
	})
}

func TestTodoService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	id := uuid.New()

	t.Run("success returns the deleted row", func(t *testing.T) {
		repo := &fakeTodoRepository{}
		repo.findByIDAndUserFn = func(ctx context.Context, uid, targetID string) (*todo.Todo, error) {
			return &todo.Todo{ID: id, UserID: uuid.MustParse(userID), TaskName: "お礼メール"}, nil
		}
		svc := todo.NewService(repo)

		resp, err := svc.Delete(ctx, userID, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "お礼メール", resp.TaskName)
	})

	t.Run("negative scoped miss", func(t *testing.T) {
		svc := todo.NewService(&fakeTodoRepository{})

		_, err := svc.Delete(ctx, userID, id.String())

		assert.ErrorIs(t, err, todoerrors.ErrTodoNotFound)
	})
}
