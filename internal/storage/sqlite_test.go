package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/neuroedu/tui-statlab/internal/core"
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

	snaps := []core.ResultSnapshot{
		{TestID: "gof", Statistic: 59.48, PValue: 0.0000001, DF: 2},
		{TestID: "gof", Statistic: 0.5, PValue: 0.78, DF: 2},
		{TestID: "paired", Statistic: 9.4, PValue: 0.00001, DF: 9},
	}
	for _, snap := range snaps {
		if _, err := store.SaveResult(snap); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults("gof", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 gof results, got %d", len(results))
	}

	// Newest first
	if results[0].Statistic != 0.5 {
		t.Errorf("Expected newest statistic 0.5, got %v", results[0].Statistic)
	}
	if results[1].Statistic != 59.48 {
		t.Errorf("Expected oldest statistic 59.48, got %v", results[1].Statistic)
	}
	if results[0].DF != 2 {
		t.Errorf("Expected df 2, got %d", results[0].DF)
	}
}

func TestStoreAllRecent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		snap := core.ResultSnapshot{TestID: "onesample", Statistic: float64(i), PValue: 0.5, DF: 9}
		if _, err := store.SaveResult(snap); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.AllRecent(3)
	if err != nil {
		t.Fatalf("AllRecent() failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit 3, got %d", len(results))
	}
	if results[0].Statistic != 4 {
		t.Errorf("Expected newest statistic 4, got %v", results[0].Statistic)
	}
}

func TestStoreSummaries(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(core.ResultSnapshot{TestID: "gof", Statistic: 5, PValue: 0.08, DF: 2})
	store.SaveResult(core.ResultSnapshot{TestID: "gof", Statistic: 59, PValue: 0.0001, DF: 2})
	store.SaveResult(core.ResultSnapshot{TestID: "twosample", Statistic: 1, PValue: 0.34, DF: 8})

	summaries, err := store.Summaries()
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].TestID != "gof" || summaries[0].Runs != 2 {
		t.Errorf("Unexpected gof summary: %+v", summaries[0])
	}
	if summaries[0].MinPValue != 0.0001 {
		t.Errorf("Expected min p 0.0001, got %v", summaries[0].MinPValue)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(core.ResultSnapshot{TestID: "paired", Statistic: 9, PValue: 0.001, DF: 9})
	store.SaveResult(core.ResultSnapshot{TestID: "gof", Statistic: 5, PValue: 0.08, DF: 2})

	if err := store.ClearResults("paired"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.RecentResults("paired", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no paired results after clear, got %d", len(results))
	}

	// Other tests are untouched
	results, err = store.RecentResults("gof", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 gof result, got %d", len(results))
	}
}
