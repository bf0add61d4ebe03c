package repository

import (
	"context"
	"fmt"

	"kinohub/internal/data/entity"
	"kinohub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	FindByReviewID(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error)
	CountByReviewID(ctx context.Context, reviewID uuid.UUID) (int64, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (cr *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, review_id, author_id, text, pub_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := cr.db.Exec(ctx, query,
		comment.ID,
		comment.ReviewID,
		comment.AuthorID,
		comment.Text,
		comment.PubDate,
	)
	if err != nil {
		cr.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", comment.ReviewID.String()),
			zap.String("author_id", comment.AuthorID.String()),
		)
		return fmt.Errorf("create comment on review %s: %w", comment.ReviewID.String(), err)
	}

	return nil
}

func (cr *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	query := `
		SELECT id, review_id, author_id, text, pub_date
		FROM comments
		WHERE id = $1
	`

	var comment entity.Comment
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.ReviewID,
		&comment.AuthorID,
		&comment.Text,
		&comment.PubDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find comment by ID",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return nil, fmt.Errorf("find comment by ID %s: %w", id.String(), err)
	}

	return &comment, nil
}

func (cr *commentRepository) FindByReviewID(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT id, review_id, author_id, text, pub_date
		FROM comments
		WHERE review_id = $1
		ORDER BY pub_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := cr.db.Query(ctx, query, reviewID, limit, offset)
	if err != nil {
		cr.log.Error("Failed to find comments by review",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return nil, fmt.Errorf("find comments by review %s: %w", reviewID.String(), err)
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ReviewID,
			&comment.AuthorID,
			&comment.Text,
			&comment.PubDate,
		)
		if err != nil {
			cr.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments rows: %w", err)
	}

	return comments, nil
}

func (cr *commentRepository) CountByReviewID(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM comments WHERE review_id = $1`

	var count int64
	if err := cr.db.QueryRow(ctx, query, reviewID).Scan(&count); err != nil {
		cr.log.Error("Failed to count comments by review",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return 0, fmt.Errorf("count comments by review %s: %w", reviewID.String(), err)
	}

	return count, nil
}

func (cr *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	query := `UPDATE comments SET text = $2 WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, comment.ID, comment.Text)
	if err != nil {
		cr.log.Error("Failed to update comment",
			zap.Error(err),
			zap.String("comment_id", comment.ID.String()),
		)
		return fmt.Errorf("update comment %s: %w", comment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (cr *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return fmt.Errorf("delete comment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	cr.log.Info("Comment deleted", zap.String("comment_id", id.String()))
	return nil
}
