package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DrawLogRepo struct{ db *sql.DB }

func NewDrawLogRepo(db *sql.DB) *DrawLogRepo { return &DrawLogRepo{db: db} }

// Record inserts the round. A zero ID gets a fresh one.
func (r *DrawLogRepo) Record(ctx context.Context, d DrawRound) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.DrawnAt.IsZero() {
		d.DrawnAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO draw_rounds (id, guild_id, round, requested, winner_ids, drawn_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, d.ID, d.GuildID, d.Round, d.Requested, pq.Array(d.WinnerIDs), d.DrawnAt)
	if err != nil {
		return fmt.Errorf("insert draw round: %w", err)
	}
	return nil
}

// Recent devuelve las últimas rondas del guild, más nueva primero.
func (r *DrawLogRepo) Recent(ctx context.Context, guildID string, limit int) ([]DrawRound, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, guild_id, round, requested, winner_ids, drawn_at
  FROM draw_rounds
 WHERE guild_id = $1
 ORDER BY drawn_at DESC
 LIMIT $2
`, guildID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DrawRound
	for rows.Next() {
		var d DrawRound
		if err := rows.Scan(&d.ID, &d.GuildID, &d.Round, &d.Requested, pq.Array(&d.WinnerIDs), &d.DrawnAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Prune borra rondas anteriores a olderThan y devuelve cuántas.
func (r *DrawLogRepo) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM draw_rounds WHERE drawn_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
