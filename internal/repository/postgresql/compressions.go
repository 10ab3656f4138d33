package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

const TableCompressions = "compressions"

type CompressionsRepository struct {
	pool      *pgxpool.Pool
	txManager *TxManager
	qb        sq.StatementBuilderType
}

func NewCompressionsRepository(pool *pgxpool.Pool, txManager *TxManager) *CompressionsRepository {
	return &CompressionsRepository{
		pool:      pool,
		txManager: txManager,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CompressionsRepository) SaveCompression(ctx context.Context, compression *domain.Compression) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableCompressions).
		Columns(
			"id",
			"filename",
			"level",
			"original_size",
			"compressed_size",
			"duration_ms",
			"created_at",
		).
		Values(
			compression.ID,
			compression.Filename,
			compression.Level,
			compression.OriginalSize,
			compression.CompressedSize,
			compression.DurationMS,
			compression.CreatedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(TableCompressions, err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(TableCompressions, err)
	}

	return nil
}

// Compressions returns a page of the history, newest first, and the total number of records.
// The page and the total are read from one snapshot.
func (r *CompressionsRepository) Compressions(
	ctx context.Context,
	limit, offset uint64,
) (compressions []*domain.Compression, total int, err error) {
	err = r.txManager.WithTransaction(ctx, ReadSnapshot, func(ctx context.Context) error {
		total, err = r.count(ctx)
		if err != nil {
			return err
		}

		compressions, err = r.page(ctx, limit, offset)
		return err
	})
	if err != nil {
		return nil, -1, err
	}

	return compressions, total, nil
}

func (r *CompressionsRepository) count(ctx context.Context) (int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableCompressions).
		ToSql()
	if err != nil {
		return -1, createQueryError(TableCompressions, err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return -1, scanRowError(TableCompressions, err)
	}

	return total, nil
}

func (r *CompressionsRepository) page(ctx context.Context, limit, offset uint64) ([]*domain.Compression, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"filename",
			"level",
			"original_size",
			"compressed_size",
			"duration_ms",
			"created_at",
		).
		From(TableCompressions).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, createQueryError(TableCompressions, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(TableCompressions, err)
	}

	compressions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Compression])
	if err != nil {
		return nil, collectRowsError(TableCompressions, err)
	}

	return compressions, nil
}

func (r *CompressionsRepository) Stats(ctx context.Context) (*domain.CompressionStats, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(original_size), 0)::BIGINT",
			"COALESCE(SUM(compressed_size), 0)::BIGINT",
		).
		From(TableCompressions).
		ToSql()
	if err != nil {
		return nil, createQueryError(TableCompressions, err)
	}

	stats := &domain.CompressionStats{}
	err = db.QueryRow(ctx, sql, args...).Scan(
		&stats.Files,
		&stats.TotalOriginalSize,
		&stats.TotalCompressedSize,
	)
	if err != nil {
		return nil, scanRowError(TableCompressions, err)
	}

	stats.BytesSaved = stats.TotalOriginalSize - stats.TotalCompressedSize
	stats.SavingsPercent = domain.SavingsPercent(stats.TotalOriginalSize, stats.TotalCompressedSize)

	return stats, nil
}
