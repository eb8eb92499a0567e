package course_repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"training-hub/internal/domain/models"
	course_port "training-hub/internal/domain/ports/output/course"
	"training-hub/internal/infrastructure/logger"
	repository "training-hub/internal/infrastructure/persistence/postgres/course"
	"training-hub/internal/utils"
	"training-hub/mocks"
)

func newCourseRepo(t *testing.T) (course_port.CourseRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	return repository.NewCourseRepository(q, logger.New("test")), q
}

func TestCourseRepository_FindCourseIDByCourseRepo(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		repo, q := newCourseRepo(t)
		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything).Run(func(args ...interface{}) {
			*(args[0].(*int64)) = 7
		}).Return(nil)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)

		id, err := repo.FindCourseIDByCourseRepo(context.Background(), "acme/bootcamp")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("not linked", func(t *testing.T) {
		repo, q := newCourseRepo(t)
		row := mocks.NewRow(t)
		row.EXPECT().Scan(mock.Anything).Return(pgx.ErrNoRows)
		q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)

		_, err := repo.FindCourseIDByCourseRepo(context.Background(), "acme/other")
		assert.ErrorIs(t, err, utils.ErrCourseNotFound)
	})
}

func TestCourseRepository_ListTrainerIDs(t *testing.T) {
	repo, q := newCourseRepo(t)
	rows := mocks.NewRows(t)
	rows.EXPECT().Next().Return(true).Once()
	rows.EXPECT().Scan(mock.Anything).Run(func(args ...interface{}) { *(args[0].(*int64)) = 3 }).Return(nil).Once()
	rows.EXPECT().Next().Return(true).Once()
	rows.EXPECT().Scan(mock.Anything).Run(func(args ...interface{}) { *(args[0].(*int64)) = 4 }).Return(nil).Once()
	rows.EXPECT().Next().Return(false).Once()
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close().Return()
	q.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	ids, err := repo.ListTrainerIDs(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids)
}

func TestCourseRepository_CreateCourseRepo(t *testing.T) {
	tests := []struct {
		name      string
		scanErr   error
		wantIsErr error
	}{
		{name: "success"},
		{name: "duplicate", scanErr: &pgconn.PgError{Code: "23505"}, wantIsErr: utils.ErrAlreadyExists},
		{name: "unknown course", scanErr: &pgconn.PgError{Code: "23503", ConstraintName: "course_repos_course_id_fkey"}, wantIsErr: utils.ErrCourseNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newCourseRepo(t)
			row := mocks.NewRow(t)
			call := row.EXPECT().Scan(mock.Anything, mock.Anything)
			if tt.scanErr != nil {
				call.Return(tt.scanErr)
			} else {
				call.Run(func(args ...interface{}) {
					*(args[0].(*int64)) = 11
					*(args[1].(*time.Time)) = time.Now()
				}).Return(nil)
			}
			q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)

			link := &models.CourseRepo{CourseID: 7, RepoName: "acme/bootcamp"}
			err := repo.CreateCourseRepo(context.Background(), link)
			if tt.wantIsErr != nil {
				assert.ErrorIs(t, err, tt.wantIsErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), link.ID)
		})
	}

	t.Run("invalid arg", func(t *testing.T) {
		repo, _ := newCourseRepo(t)
		err := repo.CreateCourseRepo(context.Background(), &models.CourseRepo{CourseID: 7})
		assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	})
}
