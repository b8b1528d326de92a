package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/snake-autopilot/internal/sim"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	episodes := []EpisodeRecord{
		{PlannerID: "safe", GridSize: 20, Seed: 1, Score: 120, Ticks: 4000, Replans: 121, Outcome: "doomed"},
		{PlannerID: "safe", GridSize: 20, Seed: 2, Score: 399, Ticks: 9000, Replans: 400, Outcome: "filled"},
		{PlannerID: "safe", GridSize: 20, Seed: 3, Score: 80, Ticks: 2500, Replans: 81, Outcome: "doomed"},
		{PlannerID: "greedy", GridSize: 20, Seed: 1, Score: 35, Ticks: 900, Replans: 36, Outcome: "died"},
	}
	for _, rec := range episodes {
		if _, err := store.SaveEpisode(rec); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	top, err := store.TopEpisodes("safe", 10)
	if err != nil {
		t.Fatalf("TopEpisodes() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 safe episodes, got %d", len(top))
	}

	// Should be sorted by score descending
	if top[0].Score != 399 || top[1].Score != 120 || top[2].Score != 80 {
		t.Errorf("Wrong order: got scores %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Outcome != "filled" {
		t.Errorf("Expected outcome 'filled', got %q", top[0].Outcome)
	}
	if top[0].GridSize != 20 || top[0].Seed != 2 {
		t.Errorf("Record metadata lost: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	// Limit applies
	limited, err := store.TopEpisodes("safe", 2)
	if err != nil {
		t.Fatalf("TopEpisodes() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 episodes with limit 2, got %d", len(limited))
	}

	// Planners don't leak into each other
	greedy, err := store.TopEpisodes("greedy", 10)
	if err != nil {
		t.Fatalf("TopEpisodes() failed: %v", err)
	}
	if len(greedy) != 1 || greedy[0].Score != 35 {
		t.Errorf("Expected one greedy episode with score 35, got %+v", greedy)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	// No episodes yet
	best, err := store.BestScore("safe")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty table, got %d", best)
	}

	for _, score := range []int{10, 55, 31} {
		if _, err := store.SaveEpisode(EpisodeRecord{
			PlannerID: "safe", GridSize: 10, Score: score, Outcome: "doomed",
		}); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	best, err = store.BestScore("safe")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 55 {
		t.Errorf("Expected best score 55, got %d", best)
	}
}

func TestClearEpisodes(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveEpisode(EpisodeRecord{PlannerID: "safe", GridSize: 10, Score: 5, Outcome: "doomed"}); err != nil {
		t.Fatalf("SaveEpisode() failed: %v", err)
	}
	if _, err := store.SaveEpisode(EpisodeRecord{PlannerID: "greedy", GridSize: 10, Score: 7, Outcome: "died"}); err != nil {
		t.Fatalf("SaveEpisode() failed: %v", err)
	}

	if err := store.ClearEpisodes("safe"); err != nil {
		t.Fatalf("ClearEpisodes() failed: %v", err)
	}

	safe, err := store.TopEpisodes("safe", 10)
	if err != nil {
		t.Fatalf("TopEpisodes() failed: %v", err)
	}
	if len(safe) != 0 {
		t.Errorf("Expected no safe episodes after clear, got %d", len(safe))
	}

	// Other planners untouched
	greedy, err := store.TopEpisodes("greedy", 10)
	if err != nil {
		t.Fatalf("TopEpisodes() failed: %v", err)
	}
	if len(greedy) != 1 {
		t.Errorf("Clear removed another planner's episodes")
	}
}

func TestPlannerStats(t *testing.T) {
	store := openTestStore(t)

	records := []EpisodeRecord{
		{PlannerID: "safe", GridSize: 10, Score: 10, Ticks: 100, Outcome: "doomed"},
		{PlannerID: "safe", GridSize: 10, Score: 99, Ticks: 700, Outcome: "filled"},
		{PlannerID: "safe", GridSize: 10, Score: 20, Ticks: 400, Outcome: "capped"},
	}
	for _, rec := range records {
		if _, err := store.SaveEpisode(rec); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	stats, err := store.GetPlannerStats("safe")
	if err != nil {
		t.Fatalf("GetPlannerStats() failed: %v", err)
	}
	if stats.Episodes != 3 {
		t.Errorf("Episodes = %d, expected 3", stats.Episodes)
	}
	if stats.BestScore != 99 {
		t.Errorf("BestScore = %d, expected 99", stats.BestScore)
	}
	if stats.AvgScore != 43 {
		t.Errorf("AvgScore = %v, expected 43", stats.AvgScore)
	}
	if stats.Filled != 1 {
		t.Errorf("Filled = %d, expected 1", stats.Filled)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun was not populated")
	}

	// Unknown planner gives zeroed stats, not an error
	empty, err := store.GetPlannerStats("nobody")
	if err != nil {
		t.Fatalf("GetPlannerStats() failed for unknown planner: %v", err)
	}
	if empty.Episodes != 0 || empty.BestScore != 0 {
		t.Errorf("Expected zeroed stats, got %+v", empty)
	}
}

func TestGetAllPlannerStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveEpisode(EpisodeRecord{PlannerID: "safe", GridSize: 10, Score: 12, Outcome: "doomed"}); err != nil {
		t.Fatalf("SaveEpisode() failed: %v", err)
	}
	if _, err := store.SaveEpisode(EpisodeRecord{PlannerID: "greedy", GridSize: 10, Score: 4, Outcome: "died"}); err != nil {
		t.Fatalf("SaveEpisode() failed: %v", err)
	}

	all, err := store.GetAllPlannerStats()
	if err != nil {
		t.Fatalf("GetAllPlannerStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 planners, got %d", len(all))
	}
	if all["safe"].BestScore != 12 || all["greedy"].BestScore != 4 {
		t.Errorf("Wrong per-planner stats: %+v", all)
	}
}

func TestSaveResultAdapter(t *testing.T) {
	store := openTestStore(t)

	res := sim.Result{
		Planner:  "safe",
		GridSize: 14,
		Seed:     77,
		Score:    42,
		Ticks:    1234,
		Replans:  43,
		Outcome:  sim.OutcomeDoomed,
		Duration: 3 * time.Second,
	}
	if err := store.SaveResult(res); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	top, err := store.TopEpisodes("safe", 1)
	if err != nil {
		t.Fatalf("TopEpisodes() failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("Expected 1 episode, got %d", len(top))
	}
	rec := top[0]
	if rec.GridSize != 14 || rec.Seed != 77 || rec.Score != 42 || rec.Ticks != 1234 || rec.Replans != 43 || rec.Outcome != "doomed" {
		t.Errorf("Adapter lost fields: %+v", rec)
	}
}
