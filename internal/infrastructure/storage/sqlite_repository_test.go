package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndListRuns(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	runs := []domain.RunRecord{
		{ID: "run-1", Topic: "first topic", Category: "economy", SceneCount: 5, Duration: 42.5, Status: domain.StatusScripted, ScriptJSON: "{}", CreatedAt: base},
		{ID: "run-2", Topic: "second topic", Status: domain.StatusAssembled, VideoPath: "/out/final.mp4", CreatedAt: base.Add(time.Hour)},
	}
	for _, run := range runs {
		if err := repo.SaveRun(ctx, run); err != nil {
			t.Fatalf("save %s: %v", run.ID, err)
		}
	}

	got, err := repo.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(got))
	}
	if got[0].ID != "run-2" {
		t.Fatalf("expected newest first, got %q", got[0].ID)
	}
	if got[1].Category != "economy" || got[1].Duration != 42.5 {
		t.Fatalf("unexpected record: %+v", got[1])
	}
}

func TestSaveRunUpsertsStatus(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	ctx := context.Background()

	run := domain.RunRecord{ID: "run-1", Topic: "topic", Status: domain.StatusScripted, CreatedAt: time.Now().UTC()}
	if err := repo.SaveRun(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}

	run.Status = domain.StatusAssembled
	run.VideoPath = "/out/final.mp4"
	if err := repo.SaveRun(ctx, run); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := repo.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected upsert, got %d rows", len(got))
	}
	if got[0].Status != domain.StatusAssembled || got[0].VideoPath != "/out/final.mp4" {
		t.Fatalf("unexpected record after upsert: %+v", got[0])
	}
}

func TestListRunsHonorsLimit(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		run := domain.RunRecord{
			ID:        string(rune('a' + i)),
			Topic:     "t",
			Status:    domain.StatusScripted,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.SaveRun(ctx, run); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := repo.ListRuns(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(got))
	}
}
