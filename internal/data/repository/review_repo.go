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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByTitleID(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByTitleID(ctx context.Context, titleID uuid.UUID) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id, titleID uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// recomputeRatingSQL rewrites the title's cached rating from the current
// review set. AVG over zero rows is NULL, which clears the rating. The
// title row update serializes concurrent writers of the same title.
const recomputeRatingSQL = `
		UPDATE titles
		SET rating = (SELECT AVG(score)::float8 FROM reviews WHERE title_id = $1),
		    updated_at = NOW()
		WHERE id = $1
`

// Create inserts the review and then recomputes the title rating inside
// the same transaction, so the new score is part of the average and a
// failed insert never moves the rating.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create review: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO reviews (id, title_id, author_id, text, score, pub_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, query,
		review.ID,
		review.TitleID,
		review.AuthorID,
		review.Text,
		review.Score,
		review.PubDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("title_id", review.TitleID.String()),
			zap.String("author_id", review.AuthorID.String()),
		)
		return fmt.Errorf("create review for title %s by %s: %w",
			review.TitleID.String(), review.AuthorID.String(), err)
	}

	if _, err := tx.Exec(ctx, recomputeRatingSQL, review.TitleID); err != nil {
		r.log.Error("Failed to recompute title rating",
			zap.Error(err),
			zap.String("title_id", review.TitleID.String()),
		)
		return fmt.Errorf("recompute rating for title %s: %w", review.TitleID.String(), err)
	}

	return tx.Commit(ctx)
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, title_id, author_id, text, score, pub_date
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.TitleID,
		&review.AuthorID,
		&review.Text,
		&review.Score,
		&review.PubDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByTitleID(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, title_id, author_id, text, score, pub_date
		FROM reviews
		WHERE title_id = $1
		ORDER BY pub_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, titleID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by title",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return nil, fmt.Errorf("find reviews by title %s: %w", titleID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.TitleID,
			&review.AuthorID,
			&review.Text,
			&review.Score,
			&review.PubDate,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByTitleID(ctx context.Context, titleID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE title_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, titleID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by title",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return 0, fmt.Errorf("count reviews by title %s: %w", titleID.String(), err)
	}

	return count, nil
}

// Update rewrites text and score, then recomputes the title rating in
// the same transaction.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update review: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE reviews
		SET text = $2, score = $3
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, review.ID, review.Text, review.Score)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, recomputeRatingSQL, review.TitleID); err != nil {
		return fmt.Errorf("recompute rating for title %s: %w", review.TitleID.String(), err)
	}

	return tx.Commit(ctx)
}

// Delete removes the review (comments cascade at the schema level) and
// recomputes the title rating from the remaining reviews.
func (r *reviewRepository) Delete(ctx context.Context, id, titleID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete review: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, recomputeRatingSQL, titleID); err != nil {
		return fmt.Errorf("recompute rating for title %s: %w", titleID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	r.log.Info("Review deleted",
		zap.String("review_id", id.String()),
		zap.String("title_id", titleID.String()),
	)
	return nil
}
