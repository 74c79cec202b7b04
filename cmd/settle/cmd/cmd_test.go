package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/settle/config"
	"github.com/rustyeddy/settle/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Commands share package-level flag state, so these tests do not run in
// parallel.

func resetFlags() {
	logLevel = "info"
	envFiles = nil
	runConfigPath, runName, runOrgPath = "", "", ""
	runDaily, runMonthEnds = 0, false
	journalDBPath, journalFrom, journalTo, journalOrg = "./settle.db", "", "", false
	monthsNoEOM, monthsStrict = false, false
	configInitOutput, configValidatePath = "scenario.yaml", ""
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "settle version "+version)
}

func TestMonths(t *testing.T) {
	out, _, err := execute(t, "months", "2024-01-31", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "1.0000\n", out)

	out, _, err = execute(t, "months", "2024-02-29", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "-1.0000\n", out)

	_, _, err = execute(t, "months", "--strict", "2024-02-29", "2024-01-31")
	assert.Error(t, err)

	_, _, err = execute(t, "months", "yesterday", "2024-01-31")
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "chatty", "version")
	assert.Error(t, err)
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	out, _, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default scenario")
	assert.FileExists(t, path)

	out, _, err = execute(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Scenario valid")
	assert.Contains(t, out, "Account: SAV-001 (Balance: 10000.00)")
	assert.Contains(t, out, "Schedules: 1")
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account: {id: X}\n"), 0o644))

	_, _, err := execute(t, "config", "validate", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRunAndQueryJournal(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "settle.db")
	orgPath := filepath.Join(dir, "run.org")
	scenario := filepath.Join(dir, "scenario.yaml")

	cfg := config.Default()
	cfg.Journal = config.JournalConfig{Type: config.JournalSQLite, DBPath: dbPath}
	require.NoError(t, cfg.SaveToFile(scenario))

	out, logs, err := execute(t, "run", "-f", scenario, "--name", "baseline", "--daily", "2", "--month-ends", "--org", orgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Simulation Result")
	assert.Contains(t, out, "Name:          baseline")
	assert.Contains(t, out, "Daily Breakdown")
	assert.Contains(t, out, "2024-12")
	assert.Contains(t, out, "Results saved to: "+dbPath)
	assert.Contains(t, logs, "simulation complete")
	assert.FileExists(t, orgPath)

	j, err := journal.NewSQLite(dbPath)
	require.NoError(t, err)
	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.NoError(t, j.Close())
	require.Len(t, runs, 1)
	runID := runs[0].RunID

	out, _, err = execute(t, "journal", "runs", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "366")

	out, _, err = execute(t, "journal", "run", runID, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, ":RUN_ID: "+runID)

	out, _, err = execute(t, "journal", "snapshots", runID, "--db", dbPath, "--from", "2024-01-01", "--to", "2024-01-03")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)

	out, _, err = execute(t, "journal", "snapshots", runID, "--db", dbPath, "--org")
	require.NoError(t, err)
	assert.Contains(t, out, "| Date | Balance | Interest |")
	assert.Contains(t, out, "| 2024-12-31 |")

	_, _, err = execute(t, "journal", "run", "missing", "--db", dbPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunJournalFromEnv(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "env.db")
	scenario := filepath.Join(dir, "scenario.yaml")

	cfg := config.Default()
	cfg.Journal = config.JournalConfig{}
	require.NoError(t, cfg.SaveToFile(scenario))

	t.Setenv(config.EnvJournalType, config.JournalSQLite)
	t.Setenv(config.EnvDBPath, dbPath)

	out, _, err := execute(t, "run", "-f", scenario)
	require.NoError(t, err)
	assert.Contains(t, out, "Results saved to: "+dbPath)

	j, err := journal.NewSQLite(dbPath)
	require.NoError(t, err)
	defer j.Close()
	runs, err := j.ListRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRunRejectsInvalidScenario(t *testing.T) {
	scenario := filepath.Join(t.TempDir(), "scenario.yaml")
	cfg := config.Default()
	cfg.Journal = config.JournalConfig{}
	require.NoError(t, cfg.SaveToFile(scenario))

	t.Setenv(config.EnvJournalType, "")
	t.Setenv(config.EnvDBPath, "")

	_, _, err := execute(t, "run", "-f", scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestJournalMissingDB(t *testing.T) {
	_, _, err := execute(t, "journal", "runs", "--db", filepath.Join(t.TempDir(), "none.db"))
	assert.Error(t, err)
}

func TestDemoAll(t *testing.T) {
	out, _, err := execute(t, "demo", "all")
	require.NoError(t, err)

	for _, title := range []string{
		"Simple Interest",
		"Time-Varying Interest Rates",
		"Multiple Payment Streams",
		"Daily Compounding",
		"Savings Account Evolution",
	} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "Net Payments:   10000.00")
}

func TestDemoSingle(t *testing.T) {
	out, _, err := execute(t, "demo", "compounding")
	require.NoError(t, err)
	assert.Contains(t, out, "Simple interest:   98.63")
	assert.NotContains(t, out, "Savings Account Evolution")
}
