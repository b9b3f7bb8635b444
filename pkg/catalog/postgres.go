package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadBlockedDomains fetches additional blocked domains from Postgres. The
// result is meant to be merged into the catalog once at startup; the table is
// not re-read during the process lifetime.
//
// Expected schema:
//
//	CREATE TABLE blocked_domains (
//	    domain  text PRIMARY KEY,
//	    active  boolean NOT NULL DEFAULT true
//	);
func LoadBlockedDomains(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	rows, err := pool.Query(ctx, `SELECT domain FROM blocked_domains WHERE active`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocked domains: %w", err)
	}
	defer rows.Close()

	var domains []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan blocked domain: %w", err)
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blocked domains: %w", err)
	}

	return domains, nil
}
