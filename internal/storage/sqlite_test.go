package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun("rollout", 2048, 300, 128); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("rollout", 1024, 200, 64); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("rollout", 4096, 450, 256); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different agent
	if _, err := store.SaveRun("random", 512, 120, 32); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("rollout", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 4096 {
		t.Errorf("Expected highest score to be 4096, got %d", runs[0].Score)
	}
	if runs[1].Score != 2048 {
		t.Errorf("Expected second score to be 2048, got %d", runs[1].Score)
	}
	if runs[2].Score != 1024 {
		t.Errorf("Expected third score to be 1024, got %d", runs[2].Score)
	}

	if runs[0].Moves != 450 || runs[0].MaxTile != 256 {
		t.Errorf("Run metadata not preserved: moves=%d maxTile=%d", runs[0].Moves, runs[0].MaxTile)
	}

	randomRuns, err := store.TopRuns("random", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(randomRuns) != 1 {
		t.Errorf("Expected 1 random run, got %d", len(randomRuns))
	}
}

func TestStoreTopRunsAcrossAgents(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("random", 100, 10, 8)
	store.SaveRun("rollout", 300, 30, 32)
	store.SaveRun("expectimax", 200, 20, 16)

	// Empty agent ID returns the global leaderboard
	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs across agents, got %d", len(runs))
	}
	if runs[0].AgentID != "rollout" || runs[0].Score != 300 {
		t.Errorf("Expected rollout/300 on top, got %s/%d", runs[0].AgentID, runs[0].Score)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun("test", (i+1)*100, i*10, 16)
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore("rollout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for fresh agent, got %d", high)
	}

	store.SaveRun("rollout", 100, 10, 8)
	store.SaveRun("rollout", 300, 30, 32)
	store.SaveRun("rollout", 200, 20, 16)

	high, err = store.HighScore("rollout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("rollout", 100, 10, 8)
	store.SaveRun("rollout", 200, 20, 16)
	store.SaveRun("random", 300, 30, 32)

	if err := store.ClearRuns("rollout"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	rolloutRuns, _ := store.TopRuns("rollout", 10)
	if len(rolloutRuns) != 0 {
		t.Errorf("Expected 0 rollout runs after clear, got %d", len(rolloutRuns))
	}

	randomRuns, _ := store.TopRuns("random", 10)
	if len(randomRuns) != 1 {
		t.Errorf("Random runs should not be affected by clearing rollout")
	}
}

func TestStoreAgentStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("expectimax", 100, 10, 64)
	store.SaveRun("expectimax", 300, 30, 256)

	stats, err := store.GetAgentStats("expectimax")
	if err != nil {
		t.Fatalf("GetAgentStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %f", stats.AvgScore)
	}
	if stats.BestTile != 256 {
		t.Errorf("Expected best tile 256, got %d", stats.BestTile)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
