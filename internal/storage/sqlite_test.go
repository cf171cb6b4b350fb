package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, r Result) string {
	t.Helper()
	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveResultAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, Result{GameID: "2048", Score: 120, MaxTile: 16, Moves: 30, Duration: 95 * time.Second})
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("SaveResult returned invalid uuid %q", id)
	}

	got, err := store.ResultByUUID(id)
	if err != nil {
		t.Fatalf("ResultByUUID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved result not found")
	}
	if got.Score != 120 || got.MaxTile != 16 || got.Moves != 30 || got.Won || got.Duration != 95*time.Second {
		t.Errorf("round trip mismatch: %+v", *got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSaveResultUpdatesSameGame(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	mustSave(t, store, Result{GameUUID: id, GameID: "2048", Score: 100, MaxTile: 8})
	mustSave(t, store, Result{GameUUID: id, GameID: "2048", Score: 2500, MaxTile: 2048, Won: true})

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("same uuid should update in place, got %d rows", len(scores))
	}
	if scores[0].Score != 2500 || !scores[0].Won || scores[0].MaxTile != 2048 {
		t.Errorf("row not updated: %+v", scores[0])
	}
}

func TestSaveResultValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{GameID: "2048", GameUUID: "not-a-uuid"}); err == nil {
		t.Error("invalid uuid should be rejected")
	}
	if _, err := store.SaveResult(Result{Score: 10}); err == nil {
		t.Error("missing game id should be rejected")
	}
}

func TestTopScoresOrderingAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{GameID: "2048", Score: 100, MaxTile: 16},
		{GameID: "2048", Score: 50, MaxTile: 8},
		{GameID: "2048", Score: 200, MaxTile: 32},
		{GameID: "2048", Score: 100, MaxTile: 32},
		{GameID: "2048_endless", Score: 5000, MaxTile: 512},
	} {
		mustSave(t, store, r)
	}

	scores, err := store.TopScores("2048", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct{ score, tile int }{{200, 32}, {100, 32}, {100, 16}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].MaxTile != w.tile {
			t.Errorf("scores[%d] = %d/%d, want %d/%d", i, scores[i].Score, scores[i].MaxTile, w.score, w.tile)
		}
	}

	endless, err := store.TopScores("2048_endless", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 || endless[0].Score != 5000 {
		t.Errorf("endless scores = %+v", endless)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no scores, got %d", high)
	}

	mustSave(t, store, Result{GameID: "2048", Score: 100})
	mustSave(t, store, Result{GameID: "2048", Score: 300})

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "2048", Score: 100})
	mustSave(t, store, Result{GameID: "2048_endless", Score: 200})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("2048_endless", 10)
	if len(other) != 1 {
		t.Error("ClearScores should only affect the given game")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", *empty)
	}

	mustSave(t, store, Result{GameID: "2048", Score: 100, MaxTile: 64, Moves: 40})
	mustSave(t, store, Result{GameID: "2048", Score: 300, MaxTile: 2048, Moves: 60, Won: true})
	mustSave(t, store, Result{GameID: "2048_endless", Score: 50, MaxTile: 8, Moves: 5})

	st, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.Wins != 1 || st.HighScore != 300 || st.BestTile != 2048 {
		t.Errorf("stats = %+v", *st)
	}
	if st.AvgScore != 200 || st.TotalMoves != 100 {
		t.Errorf("avg/moves = %v/%d", st.AvgScore, st.TotalMoves)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["2048_endless"].HighScore != 50 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestResultByUUIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ResultByUUID(uuid.NewString())
	if err != nil {
		t.Fatalf("ResultByUUID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", *got)
	}
}
