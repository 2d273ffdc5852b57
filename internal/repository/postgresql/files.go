package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

const TableFiles = "files"

// FilesRepository is the upload journal.
type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FilesRepository) Files(ctx context.Context, limit, offset uint64) ([]*domain.File, int, error) {
	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableFiles).
		ToSql()
	if err != nil {
		return nil, -1, queryError(stageBuild, "count files", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, queryError(stageScan, "count files", err)
	}

	sql, args, err = r.qb.
		Select(
			"name",
			"original_name",
			"status",
			"error_message",
			"processed_at",
		).
		From(TableFiles).
		OrderBy("created_at DESC", "name ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, queryError(stageBuild, "list files", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, queryError(stageExecute, "list files", err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if err != nil {
		return nil, -1, queryError(stageCollect, "list files", err)
	}

	return files, total, nil
}

func (r *FilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.File) error {
	sql, args, err := r.qb.
		Insert(TableFiles).
		Columns(
			"name",
			"original_name",
			"status",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.OriginalName,
			file.Status,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return queryError(stageBuild, "upsert file", err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return queryError(stageExecute, "upsert file", err)
	}

	return nil
}

// FailProcessingFiles marks uploads left in processing by a previous run as failed.
// Their pipelines died with the process.
func (r *FilesRepository) FailProcessingFiles(ctx context.Context) (int64, error) {
	sql, args, err := r.qb.
		Update(TableFiles).
		Set("status", domain.StatusError).
		Set("error_message", "interrupted by shutdown").
		Set("processed_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return 0, queryError(stageBuild, "fail processing files", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, queryError(stageExecute, "fail processing files", err)
	}

	return tag.RowsAffected(), nil
}
