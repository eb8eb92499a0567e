package integration

import (
	"testing"
	"training-hub/internal/domain/models"
)

func mustTruncate(t *testing.T) {
	t.Helper()
	if err := TruncateAll(testCtx, pgC.Pool); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// seedBootcamp creates course 7 ("bootcamp") with trainers 2 and 3, trainee 5
// (GitHub "octo", id 42) and a second course 8 trained by 4.
func seedBootcamp(t *testing.T) {
	t.Helper()
	ctx, pool := testCtx, pgC.Pool
	users := []struct {
		id      int64
		name    string
		role    models.Role
		ghID    string
		ghLogin string
	}{
		{1, "Ada", models.RoleAdmin, "", ""},
		{2, "Grace", models.RoleTrainer, "700", "grace-h"},
		{3, "Linus", models.RoleTrainer, "", ""},
		{4, "Ken", models.RoleTrainer, "", ""},
		{5, "Ann", models.RoleTrainee, "42", "octo"},
		{6, "Bob", models.RoleTrainee, "", "bobby"},
	}
	for _, u := range users {
		if err := InsertUser(ctx, pool, u.id, u.name, u.role, u.ghID, u.ghLogin); err != nil {
			t.Fatalf("insert user %d: %v", u.id, err)
		}
	}
	for id, title := range map[int64]string{7: "bootcamp", 8: "advanced"} {
		if err := InsertCourse(ctx, pool, id, title); err != nil {
			t.Fatalf("insert course %d: %v", id, err)
		}
	}
	for _, trainer := range []int64{2, 3} {
		if err := AddCourseTrainer(ctx, pool, 7, trainer); err != nil {
			t.Fatalf("add trainer %d: %v", trainer, err)
		}
	}
	if err := AddCourseTrainer(ctx, pool, 8, 4); err != nil {
		t.Fatalf("add trainer 4: %v", err)
	}
}
