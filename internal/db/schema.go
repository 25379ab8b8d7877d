// ABOUTME: SQL schema for the life-log database.
// ABOUTME: One date-keyed table per source, plus the unified views and run log.
package db

// Every source table is keyed by calendar date so re-running a load window
// replaces rows instead of duplicating them. Raw mood stays in each source's
// native scale; journal_view applies the per-source transform on read.
const schema = `
CREATE TABLE IF NOT EXISTS remarkable (
    date TEXT PRIMARY KEY,
    mood REAL NOT NULL,
    entry TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exist_journal (
    date TEXT PRIMARY KEY,
    mood REAL NOT NULL,
    entry TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS mood_charts (
    date TEXT PRIMARY KEY,
    mood REAL NOT NULL,
    sleep INTEGER,
    cardio INTEGER,
    meditate INTEGER,
    mood_note TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bullet_journal (
    date TEXT PRIMARY KEY,
    mood REAL NOT NULL,
    sleep INTEGER,
    steps INTEGER,
    cardio INTEGER,
    meditate INTEGER,
    mood_note TEXT,
    fasting INTEGER,
    cheat_meals INTEGER,
    read INTEGER,
    draw INTEGER,
    learn INTEGER,
    write INTEGER,
    guitar INTEGER,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rescuetime (
    date TEXT PRIMARY KEY,
    productive_hours REAL NOT NULL,
    distracting_hours REAL NOT NULL,
    neutral_hours REAL NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exist_time (
    date TEXT PRIMARY KEY,
    productive_min REAL NOT NULL,
    distracting_min REAL NOT NULL,
    neutral_min REAL NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS fitness (
    date TEXT PRIMARY KEY,
    weight REAL,
    bmr REAL,
    pulse INTEGER,
    sleep REAL,
    deep_sleep REAL,
    light_sleep REAL,
    rem_sleep REAL,
    awakes REAL,
    daily_steps INTEGER,
    calories_out INTEGER,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS nutrition (
    date TEXT PRIMARY KEY,
    calories REAL,
    total_fat REAL,
    total_carbs REAL,
    protein REAL,
    sat_fat REAL,
    sodium REAL,
    net_carbs REAL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exist_tags (
    date TEXT PRIMARY KEY,
    alcohol INTEGER DEFAULT 0,
    bedsheets INTEGER DEFAULT 0,
    cardio INTEGER DEFAULT 0,
    cleaning INTEGER DEFAULT 0,
    drawing INTEGER DEFAULT 0,
    eating_out INTEGER DEFAULT 0,
    fasting INTEGER DEFAULT 0,
    guitar INTEGER DEFAULT 0,
    laundry INTEGER DEFAULT 0,
    learning INTEGER DEFAULT 0,
    meal_prep INTEGER DEFAULT 0,
    meditation INTEGER DEFAULT 0,
    nap INTEGER DEFAULT 0,
    nutribullet INTEGER DEFAULT 0,
    piano INTEGER DEFAULT 0,
    powerdrive INTEGER DEFAULT 0,
    reading INTEGER DEFAULT 0,
    shopping INTEGER DEFAULT 0,
    tech INTEGER DEFAULT 0,
    travel INTEGER DEFAULT 0,
    tv INTEGER DEFAULT 0,
    walk INTEGER DEFAULT 0,
    writing INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exist_fitness (
    date TEXT PRIMARY KEY,
    active_cal REAL,
    pulse INTEGER,
    pulse_max INTEGER,
    pulse_rest INTEGER,
    steps INTEGER,
    weight REAL,
    sleep REAL,
    sleep_end REAL,
    sleep_start REAL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS etl_runs (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    started_at DATETIME NOT NULL,
    finished_at DATETIME NOT NULL,
    rows_written INTEGER NOT NULL,
    status TEXT NOT NULL,
    error TEXT
);

CREATE INDEX IF NOT EXISTS idx_etl_runs_source ON etl_runs(source, started_at);

CREATE VIEW IF NOT EXISTS journal_view AS
SELECT date, (mood - 5.0) / 4.0 AS mood, entry FROM remarkable
UNION ALL
SELECT date, (mood - 5.0) / 4.0 AS mood, entry FROM exist_journal
UNION ALL
SELECT date, (mood - 4.0) / 3.0 AS mood, mood_note AS entry FROM mood_charts
UNION ALL
SELECT date, (mood - 3.0) / 2.0 AS mood, mood_note AS entry FROM bullet_journal;

CREATE VIEW IF NOT EXISTS time_view AS
SELECT date,
       productive_hours AS prd_hours,
       distracting_hours AS dst_hours,
       neutral_hours AS neut_hours
FROM rescuetime
UNION ALL
SELECT date,
       productive_min / 60.0,
       distracting_min / 60.0,
       neutral_min / 60.0
FROM exist_time;
`
