package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodgy/config"
	"lodgy/infras/otel/mocks"
	userMocks "lodgy/internal/domains/user/mocks"
	"lodgy/internal/domains/user/model"
	"lodgy/internal/domains/user/model/dto"
	"lodgy/internal/domains/user/service"
	cacheMocks "lodgy/shared/cache/mocks"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/failure"
)

type fixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return fixture{
		repo:  repo,
		cache: mockCache,
		svc:   service.New(repo, &config.Config{}, mockCache, mockOtel),
	}
}

func adminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "admin@example.com")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func approvedUser() model.User {
	return model.User{
		ID:     "user-1",
		Email:  "guest@example.com",
		Role:   constant.RoleGuest,
		Status: constant.UserStatusApproved,
		Active: true,
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(approvedUser(), nil)

		res, err := f.svc.Get(adminContext(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, "guest@example.com", res.Email)
		assert.True(t, res.Active)
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := f.svc.Get(adminContext(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	f := newFixture(t)

	users := []model.User{approvedUser(), {ID: "user-2", Email: "owner@example.com", Role: constant.RoleOwner, Status: constant.UserStatusApproved}}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(users, nil)

	res, err := f.svc.GetAll(adminContext(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestUserService_Update(t *testing.T) {
	fullName := "Jane Roe"

	t.Run("updates profile fields", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &fullName, fields[model.FieldFullName])
				assert.Equal(t, "admin@example.com", fields[constant.FieldModifiedBy])

				return nil
			})

		err := f.svc.Update(adminContext(), dto.UpdateUserRequest{FullName: &fullName}, "user-1")

		assert.NoError(t, err)
	})

	t.Run("empty request is rejected", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(adminContext(), dto.UpdateUserRequest{}, "user-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(adminContext(), dto.UpdateUserRequest{FullName: &fullName}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_UpdateStatus(t *testing.T) {
	t.Run("approves a pending user", func(t *testing.T) {
		f := newFixture(t)

		pending := approvedUser()
		pending.Status = constant.UserStatusPending

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.UserStatusApproved, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.UpdateStatus(adminContext(), dto.UpdateUserStatusRequest{Status: constant.UserStatusApproved}, "user-1")

		assert.NoError(t, err)
	})

	t.Run("already resolved user conflicts", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedUser(), nil)

		err := f.svc.UpdateStatus(adminContext(), dto.UpdateUserStatusRequest{Status: constant.UserStatusRejected}, "user-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		err := f.svc.UpdateStatus(adminContext(), dto.UpdateUserStatusRequest{Status: constant.UserStatusApproved}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes an existing user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(adminContext(), "user-1")

		assert.NoError(t, err)
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(adminContext(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
