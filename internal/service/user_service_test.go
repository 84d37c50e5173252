package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userRepoStub struct {
	findByUsernameFn func(ctx context.Context, username string) (*model.User, error)
	findByIDFn       func(ctx context.Context, id int64) (*model.User, error)
	findAllFn        func(ctx context.Context) ([]*model.User, error)
	updateFn         func(ctx context.Context, user *model.User) (int64, error)
	deleteFn         func(ctx context.Context, id int64) (int64, error)
}

func (s *userRepoStub) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findByUsernameFn(ctx, username)
}
func (s *userRepoStub) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *userRepoStub) FindAll(ctx context.Context) ([]*model.User, error) {
	return s.findAllFn(ctx)
}
func (s *userRepoStub) Update(ctx context.Context, user *model.User) (int64, error) {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id int64) (int64, error) {
	return s.deleteFn(ctx, id)
}

func storedUser(t *testing.T) *model.User {
	t.Helper()
	return &model.User{
		ID:       7,
		Name:     "Budi Santoso",
		NIP:      "19870101",
		Username: "budi",
		Password: hashFor(t, "lama1234"),
	}
}

func TestUserGetAllNeverExposesHash(t *testing.T) {
	svc := NewUserService(&userRepoStub{
		findAllFn: func(ctx context.Context) ([]*model.User, error) {
			return []*model.User{storedUser(t)}, nil
		},
	})

	users, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "budi", users[0].Username)

	// Response DTO tidak boleh membawa hash, juga setelah serialisasi
	raw, err := json.Marshal(users)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")
}

func TestUserGetByIDNotFound(t *testing.T) {
	svc := NewUserService(&userRepoStub{
		findByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return nil, nil
		},
	})

	user, err := svc.GetByID(context.Background(), 99)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserRecordNotFound)
}

func TestUserUpdateNotFound(t *testing.T) {
	svc := NewUserService(&userRepoStub{
		findByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return nil, nil
		},
	})

	user, err := svc.Update(context.Background(), 99, UpdateUserRequest{
		Name: "Budi", Username: "budi",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserRecordNotFound)
}

func TestUserUpdateKeepsHashWhenPasswordEmpty(t *testing.T) {
	stored := storedUser(t)
	oldHash := stored.Password

	var captured *model.User
	svc := NewUserService(&userRepoStub{
		findByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, user *model.User) (int64, error) {
			captured = user
			return 1, nil
		},
	})

	user, err := svc.Update(context.Background(), 7, UpdateUserRequest{
		Name: "Budi S.", NIP: "19870101", Username: "budi",
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", user.Name)

	require.NotNil(t, captured)
	assert.Equal(t, oldHash, captured.Password)
}

func TestUserUpdateRehashesNewPassword(t *testing.T) {
	stored := storedUser(t)
	oldHash := stored.Password

	var captured *model.User
	svc := NewUserService(&userRepoStub{
		findByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, user *model.User) (int64, error) {
			captured = user
			return 1, nil
		},
	})

	_, err := svc.Update(context.Background(), 7, UpdateUserRequest{
		Name: "Budi", Username: "budi", Password: "baru5678",
	})
	require.NoError(t, err)

	// Password baru disimpan sebagai hash bcrypt, bukan plaintext
	require.NotNil(t, captured)
	assert.NotEqual(t, oldHash, captured.Password)
	assert.NotEqual(t, "baru5678", captured.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(captured.Password), []byte("baru5678")))
}

func TestUserUpdateRowGoneAfterRead(t *testing.T) {
	svc := NewUserService(&userRepoStub{
		findByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return storedUser(t), nil
		},
		updateFn: func(ctx context.Context, user *model.User) (int64, error) {
			return 0, nil
		},
	})

	user, err := svc.Update(context.Background(), 7, UpdateUserRequest{
		Name: "Budi", Username: "budi",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserRecordNotFound)
}

func TestUserDeleteNotFound(t *testing.T) {
	svc := NewUserService(&userRepoStub{
		deleteFn: func(ctx context.Context, id int64) (int64, error) {
			return 0, nil
		},
	})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserRecordNotFound)
}

func TestUserDelete(t *testing.T) {
	svc := NewUserService(&userRepoStub{
		deleteFn: func(ctx context.Context, id int64) (int64, error) {
			assert.Equal(t, int64(7), id)
			return 1, nil
		},
	})

	assert.NoError(t, svc.Delete(context.Background(), 7))
}
