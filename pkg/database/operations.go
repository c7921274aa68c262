package database

import (
	"database/sql"
	"fmt"
	"time"

	"supercli/pkg/notes"
	"supercli/pkg/store"
	"supercli/pkg/todo"
	"supercli/pkg/utils"
)

// ReplaceTodos swaps the todos table contents for c in one transaction
func ReplaceTodos(db *sql.DB, c todo.Collection) error {
	return inTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM todos"); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`INSERT INTO todos (id, title, priority, duedate, completed, created)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, t := range c {
			var due sql.NullString
			if d, ok := t.DueDate.Get(); ok {
				due = sql.NullString{String: d, Valid: true}
			}
			if _, err := stmt.Exec(t.ID, t.Title, string(t.Priority), due, t.Completed, t.CreatedAt.String()); err != nil {
				return fmt.Errorf("inserting todo %d: %w", t.ID, err)
			}
		}
		utils.Log("Wrote %d todos to database", len(c))
		return nil
	})
}

// ReplaceNotes swaps the notes table contents for c in one transaction
func ReplaceNotes(db *sql.DB, c notes.Collection) error {
	return inTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM notes"); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`INSERT INTO notes (id, title, content, category, created, lastmodified)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, n := range c {
			if _, err := stmt.Exec(n.ID, n.Title, n.Content, n.Category, n.CreatedAt.String(), n.UpdatedAt.String()); err != nil {
				return fmt.Errorf("inserting note %d: %w", n.ID, err)
			}
		}
		utils.Log("Wrote %d notes to database", len(c))
		return nil
	})
}

// LoadTodos reads the todos table back in id order
func LoadTodos(db *sql.DB) (todo.Collection, error) {
	rows, err := db.Query(`SELECT id, title, priority, duedate, completed, created FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := todo.Collection{}
	for rows.Next() {
		var (
			t        todo.Todo
			priority string
			due      sql.NullString
			created  string
		)
		if err := rows.Scan(&t.ID, &t.Title, &priority, &due, &t.Completed, &created); err != nil {
			return nil, err
		}
		t.Priority = todo.Priority(priority)
		if due.Valid {
			if t.DueDate, err = todo.ParseDueDate(due.String); err != nil {
				return nil, err
			}
		}
		if t.CreatedAt, err = parseTimestamp(created); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// LoadNotes reads the notes table back in id order
func LoadNotes(db *sql.DB) (notes.Collection, error) {
	rows, err := db.Query(`SELECT id, title, content, category, created, lastmodified FROM notes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := notes.Collection{}
	for rows.Next() {
		var (
			n                 notes.Note
			created, modified string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &created, &modified); err != nil {
			return nil, err
		}
		if n.CreatedAt, err = parseTimestamp(created); err != nil {
			return nil, err
		}
		if n.UpdatedAt, err = parseTimestamp(modified); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func parseTimestamp(s string) (store.Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return store.Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return store.NewTimestamp(t), nil
}

func inTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
