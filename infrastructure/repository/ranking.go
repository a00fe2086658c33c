// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/domain-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/domain-ranking-api/internal/domain"
)

const (
	rankingsTable      = "rankings"
	rankingsTableAlias = "rankings r"
)

// RankingRepository é a série temporal de rankings, chaveada por (domain, date)
type RankingRepository interface {
	FindLatestFetchedAt(ctx context.Context, domainName string) (*time.Time, error)
	FindAllOrderedByDate(ctx context.Context, domainName string) ([]domain.RankPoint, error)
	DeleteAll(ctx context.Context, domainName string) (int64, error)
	BulkInsert(ctx context.Context, domainName string, points []domain.RankPoint, fetchedAt time.Time) error
	// ReplaceAll remove as linhas do domínio e insere a nova série numa única transação
	ReplaceAll(ctx context.Context, domainName string, points []domain.RankPoint, fetchedAt time.Time) (int64, error)
}

type rankingRepository struct {
	conn postgres.Conn
}

func NewRankingRepository(conn postgres.Conn) RankingRepository {
	return &rankingRepository{
		conn: conn,
	}
}

func (r *rankingRepository) FindLatestFetchedAt(ctx context.Context, domainName string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(r.fetched_at)").
		From(rankingsTableAlias).
		Where(squirrel.Eq{"r.domain": domainName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&latest); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar último fetched_at: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

func (r *rankingRepository) FindAllOrderedByDate(ctx context.Context, domainName string) ([]domain.RankPoint, error) {
	query, args, err := squirrel.
		Select("r.date", "r.rank").
		From(rankingsTableAlias).
		Where(squirrel.Eq{"r.domain": domainName}).
		OrderBy("r.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]domain.RankPoint, 0)
	for rows.Next() {
		var (
			date time.Time
			rank int
		)
		if err := rows.Scan(&date, &rank); err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
		}
		points = append(points, domain.RankPoint{Date: domain.NewDate(date), Rank: rank})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *rankingRepository) DeleteAll(ctx context.Context, domainName string) (int64, error) {
	return deleteAll(ctx, r.conn, domainName)
}

func (r *rankingRepository) BulkInsert(ctx context.Context, domainName string, points []domain.RankPoint, fetchedAt time.Time) error {
	return bulkInsert(ctx, r.conn, domainName, points, fetchedAt)
}

func (r *rankingRepository) ReplaceAll(ctx context.Context, domainName string, points []domain.RankPoint, fetchedAt time.Time) (int64, error) {
	var deleted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		count, err := deleteAll(ctx, tx, domainName)
		if err != nil {
			return err
		}
		deleted = count

		return bulkInsert(ctx, tx, domainName, points, fetchedAt)
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func deleteAll(ctx context.Context, q postgres.Queryer, domainName string) (int64, error) {
	query, args, err := squirrel.
		Delete(rankingsTable).
		Where(squirrel.Eq{"domain": domainName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar query de remoção: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas removidas: %w", err)
	}

	return deleted, nil
}

func bulkInsert(ctx context.Context, q postgres.Queryer, domainName string, points []domain.RankPoint, fetchedAt time.Time) error {
	if len(points) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(rankingsTable).
		Columns("domain", "date", "rank", "fetched_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range domain.NewRankingRecords(domainName, points, fetchedAt) {
		query = query.Values(
			record.Domain,
			record.Date.String(),
			record.Rank,
			record.FetchedAt,
		)
	}

	// Uma atualização concorrente do mesmo domínio pode já ter inserido a data
	query = query.Suffix(`
		ON CONFLICT (domain, date) DO UPDATE SET
			rank = EXCLUDED.rank,
			fetched_at = EXCLUDED.fetched_at
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
