package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    id           TEXT PRIMARY KEY,
    kind         TEXT NOT NULL,
    name         TEXT NOT NULL,
    created_at   TEXT NOT NULL,
    input_json   TEXT NOT NULL,
    result_json  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_created ON scenarios(created_at);
`
