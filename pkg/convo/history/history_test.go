package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndRecent(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	saved, err := st.SaveRun(ctx, "export.json", `{"top_n":20}`, `{"common_words":[]}`)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated run ID")
	}

	runs, err := st.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != saved.ID || got.InputPath != "export.json" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Report != `{"common_words":[]}` {
		t.Errorf("report payload: %q", got.Report)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not restored")
	}
}

func TestRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	var ids []string
	for i := 0; i < 3; i++ {
		run, err := st.SaveRun(ctx, "export.json", "{}", "{}")
		if err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := st.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Errorf("order: got %s, %s; want %s, %s", runs[0].ID, runs[1].ID, ids[2], ids[1])
	}
}

func TestRecentEmptyStore(t *testing.T) {
	st := openStore(t)
	runs, err := st.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
