package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/moviethruster/thruster-server/internal/domain"
)

// historyColumns is the ordered list of columns selected in history queries.
// Must match the scan order in scanRecord.
const historyColumns = `id, movie_title, genres, rating, recommendation_date`

// scanRecord scans a sql.Row or sql.Rows into a RecommendationRecord.
func scanRecord(scanner interface{ Scan(dest ...any) error }) (domain.RecommendationRecord, error) {
	var (
		r    domain.RecommendationRecord
		date string
	)

	if err := scanner.Scan(&r.ID, &r.Title, &r.Genres, &r.Rating, &date); err != nil {
		return domain.RecommendationRecord{}, err
	}

	t, err := parseTime(date)
	if err != nil {
		return domain.RecommendationRecord{}, fmt.Errorf("parse recommendation date: %w", err)
	}
	r.RecommendedAt = t

	return r, nil
}

// AppendRecommendation appends one row to the recommendation history log.
func (s *Store) AppendRecommendation(ctx context.Context, rec *domain.RecommendationRecord) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO recommended_movies (movie_title, genres, rating, recommendation_date)
		 VALUES (?, ?, ?, ?)`,
		rec.Title, rec.Genres, rec.Rating, formatTime(rec.RecommendedAt),
	)
	if err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// RecentRecommendations returns the most recent rows, newest first.
func (s *Store) RecentRecommendations(ctx context.Context, limit int) ([]domain.RecommendationRecord, error) {
	if limit <= 0 {
		return []domain.RecommendationRecord{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+historyColumns+`
		 FROM recommended_movies
		 ORDER BY recommendation_date DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent recommendations: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// AllRecommendations returns the full history, newest first.
func (s *Store) AllRecommendations(ctx context.Context) ([]domain.RecommendationRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+historyColumns+`
		 FROM recommended_movies
		 ORDER BY recommendation_date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ClearRecommendations deletes the entire history log and returns how
// many rows were removed. Irreversible.
func (s *Store) ClearRecommendations(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recommended_movies`)
	if err != nil {
		return 0, fmt.Errorf("clear recommendations: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear recommendations: %w", err)
	}
	return removed, nil
}

func collectRecords(rows *sql.Rows) ([]domain.RecommendationRecord, error) {
	records := []domain.RecommendationRecord{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
