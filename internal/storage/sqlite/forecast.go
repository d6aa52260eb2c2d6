package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	forecast "github.com/eugener/forecast/internal"
)

// Get retrieves a forecast by ordinal ID.
func (s *Store) Get(ctx context.Context, id int) (*forecast.Forecast, error) {
	row := s.read.QueryRowContext(ctx,
		`SELECT id, date, temperature_c, summary, last_modified
		 FROM forecasts WHERE id=?`, id,
	)
	f, err := scanForecast(row)
	if err != nil {
		return nil, fmt.Errorf("forecast %d: %w", id, err)
	}
	return f, nil
}

// All returns every forecast ordered by ID.
func (s *Store) All(ctx context.Context) ([]forecast.Forecast, error) {
	rows, err := s.read.QueryContext(ctx,
		`SELECT id, date, temperature_c, summary, last_modified FROM forecasts ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []forecast.Forecast
	for rows.Next() {
		f, err := scanForecast(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// Touch overwrites last_modified for a forecast.
func (s *Store) Touch(ctx context.Context, id int, at time.Time) error {
	result, err := s.write.ExecContext(ctx,
		`UPDATE forecasts SET last_modified=? WHERE id=?`, formatTime(at), id,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(result, fmt.Sprintf("forecast %d", id))
}

// Count returns the number of forecasts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.read.QueryRowContext(ctx, `SELECT COUNT(*) FROM forecasts`).Scan(&n)
	return n, err
}

// Seed appends forecasts in a single transaction, numbering them after
// the current maximum ID.
func (s *Store) Seed(ctx context.Context, fs []forecast.Forecast) error {
	if len(fs) == 0 {
		return nil
	}
	tx, err := s.write.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id)+1, 0) FROM forecasts`).Scan(&next); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO forecasts (id, date, temperature_c, summary, last_modified)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, f := range fs {
		if _, err := stmt.ExecContext(ctx,
			next+i, formatTime(f.Date), f.TemperatureC, f.Summary, formatTime(f.LastModified),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanForecast(s scanner) (*forecast.Forecast, error) {
	var f forecast.Forecast
	var date, lastModified string
	if err := s.Scan(&f.ID, &date, &f.TemperatureC, &f.Summary, &lastModified); err != nil {
		return nil, notFoundErr(err)
	}
	var err error
	if f.Date, err = parseTime(date); err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	if f.LastModified, err = parseTime(lastModified); err != nil {
		return nil, fmt.Errorf("parse last_modified: %w", err)
	}
	return &f, nil
}

// formatTime stores timestamps as UTC RFC 3339 with full nanosecond
// precision so touches round-trip exactly.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// notFoundErr translates sql.ErrNoRows to forecast.ErrNotFound.
func notFoundErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return forecast.ErrNotFound
	}
	return err
}

func checkRowsAffected(result sql.Result, entity string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, forecast.ErrNotFound)
	}
	return nil
}
