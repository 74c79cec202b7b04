package journal

// Schema creates the run and snapshot tables. Money columns are TEXT so
// decimals keep every digit.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created DATETIME NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	days INTEGER NOT NULL,
	initial_balance TEXT NOT NULL,
	final_balance TEXT NOT NULL,
	total_interest TEXT NOT NULL,
	net_payments TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	run_id TEXT NOT NULL,
	date DATE NOT NULL,
	balance TEXT NOT NULL,
	cumulative_interest TEXT NOT NULL,
	PRIMARY KEY (run_id, date)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_date ON snapshots(date);
`
