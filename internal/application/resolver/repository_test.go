package resolver_test

import (
	"context"
	"errors"
	"testing"

	"training-hub/internal/application/resolver"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/utils"
	"training-hub/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryResolver_ResolveCourse(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		traineeID int64
		setup     func(c *mocks.CourseRepository)
		want      int64
		wantIsErr error
		wantErr   bool
	}{
		{
			name:      "course link wins",
			traineeID: 5,
			setup: func(c *mocks.CourseRepository) {
				c.EXPECT().FindCourseIDByCourseRepo(ctx, "acme/bootcamp").Return(7, nil)
			},
			want: 7,
		},
		{
			name:      "trainee link fallback",
			traineeID: 5,
			setup: func(c *mocks.CourseRepository) {
				c.EXPECT().FindCourseIDByCourseRepo(ctx, "acme/bootcamp").Return(0, utils.ErrCourseNotFound)
				c.EXPECT().FindCourseIDByTraineeRepo(ctx, "acme/bootcamp", int64(5)).Return(9, nil)
			},
			want: 9,
		},
		{
			name: "no trainee skips fallback",
			setup: func(c *mocks.CourseRepository) {
				c.EXPECT().FindCourseIDByCourseRepo(ctx, "acme/bootcamp").Return(0, utils.ErrCourseNotFound)
			},
			wantErr:   true,
			wantIsErr: utils.ErrCourseUnresolved,
		},
		{
			name:      "neither link",
			traineeID: 5,
			setup: func(c *mocks.CourseRepository) {
				c.EXPECT().FindCourseIDByCourseRepo(ctx, "acme/bootcamp").Return(0, utils.ErrCourseNotFound)
				c.EXPECT().FindCourseIDByTraineeRepo(ctx, "acme/bootcamp", int64(5)).Return(0, utils.ErrCourseNotFound)
			},
			wantErr:   true,
			wantIsErr: utils.ErrCourseUnresolved,
		},
		{
			name:      "store error",
			traineeID: 5,
			setup: func(c *mocks.CourseRepository) {
				c.EXPECT().FindCourseIDByCourseRepo(ctx, "acme/bootcamp").Return(0, errors.New("timeout"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses := mocks.NewCourseRepository(t)
			tt.setup(courses)
			r := resolver.NewRepositoryResolver(logger.New("test"))

			got, err := r.ResolveCourse(ctx, courses, "acme/bootcamp", tt.traineeID)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIsErr != nil {
					assert.ErrorIs(t, err, tt.wantIsErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
