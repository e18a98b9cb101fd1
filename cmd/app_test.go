package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverCSVs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"2024-crypto-purchases.csv",
		"2024-crypto-redemptions.csv",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("amount,currency,date\n"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	t.Chdir(dir)

	purchases, redemptions, err := discoverCSVs("", "")
	if err != nil {
		t.Fatalf("discoverCSVs() returned error: %v", err)
	}
	if purchases != "2024-crypto-purchases.csv" {
		t.Errorf("purchases = %q, want the discovered export", purchases)
	}
	if redemptions != "2024-crypto-redemptions.csv" {
		t.Errorf("redemptions = %q, want the discovered export", redemptions)
	}
}

func TestDiscoverCSVs_ExplicitWins(t *testing.T) {
	purchases, redemptions, err := discoverCSVs("p.csv", "r.csv")
	if err != nil {
		t.Fatalf("discoverCSVs() returned error: %v", err)
	}
	if purchases != "p.csv" || redemptions != "r.csv" {
		t.Errorf("discoverCSVs() = %q, %q want the explicit files", purchases, redemptions)
	}
}

func TestDiscoverCSVs_NotFound(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, _, err := discoverCSVs("", ""); err == nil {
		t.Error("discoverCSVs() in an empty directory want error, got nil")
	}
}
