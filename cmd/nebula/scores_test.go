package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestScoresHistoryAndGameReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "nebula.db")

	runCLI(t, "sim", "stellar-reflex", "--seed", "3", "--record", "--db", db)
	runCLI(t, "sim", "space-attack", "--seed", "5", "--ticks", "400", "--record", "--db", db)

	out := runCLI(t, "scores", "--db", db)
	for _, want := range []string{"Session History", "Recent sessions:", "Stellar Reflex", "Space Attack"} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "never") {
		t.Errorf("unplayed games should show as never played:\n%s", out)
	}

	out = runCLI(t, "scores", "stellar-reflex", "--db", db)
	if !strings.Contains(out, "High Scores - Stellar Reflex") || !strings.Contains(out, "Best:") {
		t.Errorf("top scores output:\n%s", out)
	}

	out = runCLI(t, "reset", "--game", "stellar-reflex", "--yes", "--db", db)
	if !strings.Contains(out, "History of Stellar Reflex cleared.") {
		t.Errorf("reset output:\n%s", out)
	}

	out = runCLI(t, "scores", "stellar-reflex", "--db", db)
	if !strings.Contains(out, "No sessions recorded yet.") {
		t.Errorf("cleared game still has sessions:\n%s", out)
	}
	out = runCLI(t, "scores", "--limit", "5", "--db", db)
	if strings.Count(out, "Stellar Reflex") != 1 {
		t.Errorf("cleared game should only appear in the summary:\n%s", out)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "--no-db", "reset"})
	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Errorf("reset without --yes: err = %v", err)
	}
}
