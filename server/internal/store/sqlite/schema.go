package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS settings (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    noise       INTEGER NOT NULL,
    compression INTEGER NOT NULL,
    lo_freq_hue INTEGER NOT NULL,
    hi_freq_hue INTEGER NOT NULL,
    led_count   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS current_pattern (
    id      INTEGER PRIMARY KEY CHECK (id = 1),
    pattern TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    line       TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
