package profile_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rikumates/internal/profile"
	profileerrors "rikumates/internal/profile/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProfileRepository struct {
	createFn  func(ctx context.Context, p *profile.Profile) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	updateFn  func(ctx context.Context, p *profile.Profile) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeProfileRepository) WithTx(tx *gorm.DB) profile.Repository {
	return f
}

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				assert.Equal(t, id, got)
				return &profile.Profile{ID: id, Name: "山田太郎"}, nil
			},
		}
		svc := profile.NewService(repo, nil)

		resp, err := svc.Get(ctx, id.String(), id.String())

		assert.NoError(t, err)
		assert.Equal(t, "山田太郎", resp.Name)
	})

	t.Run("negative other users profile reads as not found", func(t *testing.T) {
		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				t.Fatal("repo should not be queried")
				return nil, nil
			},
		}
		svc := profile.NewService(repo, nil)

		_, err := svc.Get(ctx, uuid.New().String(), id.String())

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})

	t.Run("negative missing row", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{}, nil)

		_, err := svc.Get(ctx, id.String(), id.String())

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}

func TestProfileService_Cache(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	cacheKey := "profiles:detail:" + id.String()

	t.Run("success cache hit skips the repository", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		cached, err := json.Marshal(profile.ProfileResponse{ID: id.String(), Name: "山田太郎"})
		assert.NoError(t, err)
		redisMock.ExpectGet(cacheKey).SetVal(string(cached))

		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				t.Fatal("repo should not be queried on a cache hit")
				return nil, nil
			},
		}
		svc := profile.NewService(repo, rdb)

		resp, err := svc.Get(ctx, id.String(), id.String())

		assert.NoError(t, err)
		assert.Equal(t, "山田太郎", resp.Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("success cache miss loads from the repository and stores", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		expected := profile.ProfileResponse{ID: id.String(), Name: "山田太郎"}
		payload, err := json.Marshal(expected)
		assert.NoError(t, err)

		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSet(cacheKey, payload, 30*time.Minute).SetVal("OK")

		queried := false
		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				queried = true
				return &profile.Profile{ID: id, Name: "山田太郎"}, nil
			},
		}
		svc := profile.NewService(repo, rdb)

		resp, err := svc.Get(ctx, id.String(), id.String())

		assert.NoError(t, err)
		assert.True(t, queried)
		assert.Equal(t, "山田太郎", resp.Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("success update invalidates the cached profile", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(cacheKey).SetVal(1)

		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				return &profile.Profile{ID: id, Name: "旧名"}, nil
			},
		}
		svc := profile.NewService(repo, rdb)

		_, err := svc.Update(ctx, id.String(), id.String(), profile.UpdateProfileRequest{Name: "新名"})

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("success delete invalidates the cached profile", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(cacheKey).SetVal(1)

		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				return &profile.Profile{ID: id, Name: "山田太郎"}, nil
			},
		}
		svc := profile.NewService(repo, rdb)

		err := svc.Delete(ctx, id.String(), id.String())

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success replaces the full record", func(t *testing.T) {
		jobHuntType := profile.JobHuntTypeMidCareer
		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				return &profile.Profile{ID: id, Name: "旧名"}, nil
			},
		}
		var saved *profile.Profile
		repo.updateFn = func(ctx context.Context, p *profile.Profile) error {
			saved = p
			return nil
		}
		svc := profile.NewService(repo, nil)

		resp, err := svc.Update(ctx, id.String(), id.String(), profile.UpdateProfileRequest{
			Name:        "新名",
			JobHuntType: &jobHuntType,
		})

		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.Equal(t, "新名", saved.Name)
		assert.Equal(t, "新名", resp.Name)
		assert.Equal(t, profile.JobHuntTypeMidCareer, *resp.JobHuntType)
	})

	t.Run("negative caller mismatch performs no mutation", func(t *testing.T) {
		repo := &fakeProfileRepository{
			updateFn: func(ctx context.Context, p *profile.Profile) error {
				t.Fatal("update should not be called")
				return nil
			},
		}
		svc := profile.NewService(repo, nil)

		_, err := svc.Update(ctx, uuid.New().String(), id.String(), profile.UpdateProfileRequest{Name: "新名"})

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}

func TestProfileService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeProfileRepository{
			getByIDFn: func(ctx context.Context, got uuid.UUID) (*profile.Profile, error) {
				return &profile.Profile{ID: id, Name: "山田太郎"}, nil
			},
		}
		deleted := false
		repo.deleteFn = func(ctx context.Context, got uuid.UUID) error {
			deleted = true
			assert.Equal(t, id, got)
			return nil
		}
		svc := profile.NewService(repo, nil)

		err := svc.Delete(ctx, id.String(), id.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("negative caller mismatch", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{}, nil)

		err := svc.Delete(ctx, uuid.New().String(), id.String())

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}
