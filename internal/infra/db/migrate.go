package db

import "database/sql"

// MigrateUp creates the schema if it does not exist yet.
//
// answers.question_id deliberately has no ON DELETE CASCADE: the answer
// cascade runs as an explicit transaction in the question repository so the
// deletion path stays visible in application code.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            SERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS questions (
    id          SERIAL PRIMARY KEY,
    author_id   INTEGER NOT NULL REFERENCES users(id),
    subject     TEXT NOT NULL,
    content     TEXT NOT NULL,
    create_date TIMESTAMPTZ NOT NULL,
    modify_date TIMESTAMPTZ
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS answers (
    id          SERIAL PRIMARY KEY,
    question_id INTEGER NOT NULL REFERENCES questions(id),
    author_id   INTEGER NOT NULL REFERENCES users(id),
    content     TEXT NOT NULL,
    create_date TIMESTAMPTZ NOT NULL,
    modify_date TIMESTAMPTZ
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY create_date DESC, id DESC in the question listing
		`CREATE INDEX IF NOT EXISTS idx_questions_create_date ON questions(create_date DESC, id DESC)`,
		// answer lookup and cascade delete by parent question
		`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_author_id ON questions(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_answers_author_id ON answers(author_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
