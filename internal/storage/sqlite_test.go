package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []struct {
		player string
		ms     int64
		tokens int
	}{
		{"alice", 12000, 3},
		{"bob", 45000, 9},
		{"alice", 30500, 7},
	} {
		if _, err := store.SaveRun(r.player, r.ms, r.tokens); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Player != "bob" || runs[0].ScoreMS != 45000 || runs[0].Tokens != 9 {
		t.Errorf("unexpected leader: %+v", runs[0])
	}
	if runs[1].ScoreMS != 30500 || runs[2].ScoreMS != 12000 {
		t.Errorf("runs not sorted descending: %v, %v", runs[1].ScoreMS, runs[2].ScoreMS)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("p", int64((i+1)*1000), i)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].ScoreMS != 5000 || runs[1].ScoreMS != 4000 || runs[2].ScoreMS != 3000 {
		t.Errorf("runs not in expected order: %v", runs)
	}
}

func TestStoreBestPerPlayer(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("alice", 10000, 1)
	store.SaveRun("alice", 25000, 4)
	store.SaveRun("alice", 18000, 2)
	store.SaveRun("bob", 30000, 6)
	store.SaveRun("bob", 5000, 0)

	runs, err := store.BestPerPlayer(10)
	if err != nil {
		t.Fatalf("BestPerPlayer() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("expected one row per player, got %d", len(runs))
	}
	if runs[0].Player != "bob" || runs[0].ScoreMS != 30000 {
		t.Errorf("unexpected first row: %+v", runs[0])
	}
	if runs[1].Player != "alice" || runs[1].ScoreMS != 25000 {
		t.Errorf("unexpected second row: %+v", runs[1])
	}
}

func TestStorePersonalBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.PersonalBest("ghost")
	if err != nil {
		t.Fatalf("PersonalBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("expected 0 for unknown player, got %d", best)
	}

	store.SaveRun("alice", 10000, 1)
	store.SaveRun("alice", 32000, 5)
	store.SaveRun("alice", 20000, 3)

	best, err = store.PersonalBest("alice")
	if err != nil {
		t.Fatalf("PersonalBest() failed: %v", err)
	}
	if best != 32000 {
		t.Errorf("expected 32000, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("alice", 10000, 2)
	store.SaveRun("bob", 30000, 4)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.Players != 2 {
		t.Errorf("counts wrong: %+v", st)
	}
	if st.BestMS != 30000 {
		t.Errorf("best = %d, expected 30000", st.BestMS)
	}
	if st.AvgMS != 20000 {
		t.Errorf("avg = %v, expected 20000", st.AvgMS)
	}
	if st.AllTokens != 6 {
		t.Errorf("tokens = %d, expected 6", st.AllTokens)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("alice", 10000, 2)
	store.SaveRun("bob", 30000, 4)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("expected empty leaderboard after clear, got %d rows", len(runs))
	}
}
