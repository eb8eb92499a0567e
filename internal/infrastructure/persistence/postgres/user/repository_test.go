package user_repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"training-hub/internal/domain/models"
	user_port "training-hub/internal/domain/ports/output/user"
	"training-hub/internal/infrastructure/logger"
	repository "training-hub/internal/infrastructure/persistence/postgres/user"
	"training-hub/internal/utils"
	"training-hub/mocks"
)

func newRepo(t *testing.T) (user_port.UserRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	return repository.NewUserRepository(q, logger.New("test")), q
}

func userRow(t *testing.T, u models.User) *mocks.Row {
	row := mocks.NewRow(t)
	row.EXPECT().Scan(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args ...interface{}) {
			*(args[0].(*int64)) = u.ID
			*(args[1].(*string)) = u.Name
			*(args[2].(*models.Role)) = u.Role
			*(args[3].(*string)) = u.GitHubID
			*(args[4].(*string)) = u.GitHubUsername
			*(args[5].(*time.Time)) = u.CreatedAt
			*(args[6].(*time.Time)) = u.UpdatedAt
		}).Return(nil)
	return row
}

func failingRow(t *testing.T, err error) *mocks.Row {
	row := mocks.NewRow(t)
	row.EXPECT().Scan(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(err)
	return row
}

func TestUserRepository_GetUserByID(t *testing.T) {
	now := time.Now().Truncate(time.Microsecond)
	tests := []struct {
		name      string
		row       func(t *testing.T) *mocks.Row
		wantIsErr error
		wantErr   bool
	}{
		{
			name: "success",
			row: func(t *testing.T) *mocks.Row {
				return userRow(t, models.User{ID: 42, Name: "bob", Role: models.RoleTrainee, GitHubUsername: "bob-gh", CreatedAt: now, UpdatedAt: now})
			},
		},
		{
			name:      "not found",
			row:       func(t *testing.T) *mocks.Row { return failingRow(t, pgx.ErrNoRows) },
			wantErr:   true,
			wantIsErr: utils.ErrUserNotFound,
		},
		{
			name:    "scan error",
			row:     func(t *testing.T) *mocks.Row { return failingRow(t, errors.New("scan error")) },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(tt.row(t))

			u, err := repo.GetUserByID(context.Background(), 42)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIsErr != nil {
					assert.ErrorIs(t, err, tt.wantIsErr)
				}
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), u.ID)
			assert.Equal(t, models.RoleTrainee, u.Role)
			assert.Equal(t, "bob-gh", u.GitHubUsername)
		})
	}
}

func TestUserRepository_FindByGitHubIdentity(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		repo, q := newRepo(t)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).
			Return(userRow(t, models.User{ID: 5, Role: models.RoleTrainee, GitHubID: "9001", GitHubUsername: "octo"}))

		u, err := repo.FindByGitHubIdentity(context.Background(), "octo", "9001")
		require.NoError(t, err)
		assert.Equal(t, int64(5), u.ID)
	})

	t.Run("no match", func(t *testing.T) {
		repo, q := newRepo(t)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(failingRow(t, pgx.ErrNoRows))

		_, err := repo.FindByGitHubIdentity(context.Background(), "ghost", "")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("empty identity skips query", func(t *testing.T) {
		repo, _ := newRepo(t)
		_, err := repo.FindByGitHubIdentity(context.Background(), "", "")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})
}

func TestUserRepository_UpdateGitHubAccount(t *testing.T) {
	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		execErr   error
		wantIsErr error
	}{
		{name: "success", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "not found", tag: pgconn.NewCommandTag("UPDATE 0"), wantIsErr: utils.ErrUserNotFound},
		{name: "taken", execErr: &pgconn.PgError{Code: "23505"}, wantIsErr: utils.ErrAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(tt.tag, tt.execErr)

			err := repo.UpdateGitHubAccount(context.Background(), 7, "9001", "octo")
			if tt.wantIsErr != nil {
				assert.ErrorIs(t, err, tt.wantIsErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
