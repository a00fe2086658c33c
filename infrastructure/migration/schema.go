// Package migration cria o schema da tabela de rankings de forma idempotente
package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/domain-ranking-api/infrastructure/database/postgres"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS rankings (
		id SERIAL PRIMARY KEY,
		domain VARCHAR(253) NOT NULL,
		date DATE NOT NULL,
		rank INTEGER NOT NULL CHECK (rank > 0),
		fetched_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS rankings_domain_date_unique ON rankings (domain, date)`,
	`CREATE INDEX IF NOT EXISTS rankings_domain_fetched_at_idx ON rankings (domain, fetched_at DESC)`,
}

// Apply executa todas as instruções numa única transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar instrução %d do schema: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(statements)).Info("Schema de rankings aplicado")
	return nil
}
