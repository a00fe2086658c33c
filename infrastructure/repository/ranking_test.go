package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/domain-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/domain-ranking-api/internal/domain"
)

func newMockRepository(t *testing.T) (RankingRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRankingRepository(&postgres.Connection{DB: db}), mock
}

func mustDate(t *testing.T, value string) domain.Date {
	d, err := domain.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestRankingRepository_FindLatestFetchedAt(t *testing.T) {
	query := regexp.QuoteMeta("SELECT MAX(r.fetched_at) FROM rankings r WHERE r.domain = $1")

	t.Run("retorna o timestamp mais recente", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		fetchedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs("a.com").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(fetchedAt))

		latest, err := repo.FindLatestFetchedAt(context.Background(), "a.com")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.True(t, fetchedAt.Equal(*latest))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem linhas retorna nil", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(query).
			WithArgs("a.com").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

		latest, err := repo.FindLatestFetchedAt(context.Background(), "a.com")
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("erro do banco é propagado", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(query).
			WithArgs("a.com").
			WillReturnError(errors.New("connection refused"))

		latest, err := repo.FindLatestFetchedAt(context.Background(), "a.com")
		assert.Error(t, err)
		assert.Nil(t, latest)
	})
}

func TestRankingRepository_FindAllOrderedByDate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.date, r.rank FROM rankings r WHERE r.domain = $1 ORDER BY r.date ASC")).
		WithArgs("b.com").
		WillReturnRows(sqlmock.NewRows([]string{"date", "rank"}).
			AddRow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 10).
			AddRow(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 12))

	points, err := repo.FindAllOrderedByDate(context.Background(), "b.com")
	require.NoError(t, err)

	assert.Equal(t, []domain.RankPoint{
		{Date: mustDate(t, "2024-01-01"), Rank: 10},
		{Date: mustDate(t, "2024-01-02"), Rank: 12},
	}, points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingRepository_FindAllOrderedByDate_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT r.date, r.rank FROM rankings r").
		WithArgs("b.com").
		WillReturnRows(sqlmock.NewRows([]string{"date", "rank"}))

	points, err := repo.FindAllOrderedByDate(context.Background(), "b.com")
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestRankingRepository_DeleteAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rankings WHERE domain = $1")).
		WithArgs("a.com").
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteAll(context.Background(), "a.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingRepository_BulkInsert(t *testing.T) {
	repo, mock := newMockRepository(t)
	fetchedAt := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rankings (domain,date,rank,fetched_at) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")).
		WithArgs("a.com", "2024-01-01", 500, fetchedAt, "a.com", "2024-01-02", 480, fetchedAt).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.BulkInsert(context.Background(), "a.com", []domain.RankPoint{
		{Date: mustDate(t, "2024-01-01"), Rank: 500},
		{Date: mustDate(t, "2024-01-02"), Rank: 480},
	}, fetchedAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingRepository_BulkInsert_EmptyIsNoop(t *testing.T) {
	repo, mock := newMockRepository(t)

	err := repo.BulkInsert(context.Background(), "a.com", nil, time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingRepository_ReplaceAll(t *testing.T) {
	fetchedAt := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	points := []domain.RankPoint{{Date: mustDate(t, "2024-01-01"), Rank: 500}}

	t.Run("remove e insere na mesma transação", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rankings WHERE domain = $1")).
			WithArgs("a.com").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rankings")).
			WithArgs("a.com", "2024-01-01", 500, fetchedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.ReplaceAll(context.Background(), "a.com", points, fetchedAt)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("série vazia só remove", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rankings WHERE domain = $1")).
			WithArgs("a.com").
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectCommit()

		deleted, err := repo.ReplaceAll(context.Background(), "a.com", nil, fetchedAt)
		require.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha na inserção faz rollback da remoção", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rankings WHERE domain = $1")).
			WithArgs("a.com").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rankings")).
			WillReturnError(errors.New("unique violation"))
		mock.ExpectRollback()

		deleted, err := repo.ReplaceAll(context.Background(), "a.com", points, fetchedAt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unique violation")
		assert.Equal(t, int64(0), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
