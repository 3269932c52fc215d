package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
)

// retentionDays lee DRAW_LOG_RETENTION_DAYS (default 30).
func retentionDays() int {
	if v, err := strconv.Atoi(os.Getenv("DRAW_LOG_RETENTION_DAYS")); err == nil && v > 0 {
		return v
	}
	return 30
}

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}
	cfg.MaxConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	days := retentionDays()
	tag, err := pool.Exec(cctx,
		`DELETE FROM draw_rounds WHERE drawn_at < now() - make_interval(days => $1)`, days)
	if err != nil {
		return "", fmt.Errorf("prune draw_rounds: %w", err)
	}
	msg := fmt.Sprintf("pruned %d draw rounds older than %d days", tag.RowsAffected(), days)
	fmt.Println(msg)
	return msg, nil
}

func main() { lambda.Start(handler) }
