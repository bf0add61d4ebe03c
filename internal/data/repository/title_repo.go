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

// TitleFilter narrows title listings. Zero values mean "no filter".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
}

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title, genreIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error)
	FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error)
	CountAll(ctx context.Context, filter TitleFilter) (int64, error)
	Update(ctx context.Context, title *entity.Title) error
	SetGenres(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

// Create inserts the title and its genre links in one transaction.
func (tr *titleRepository) Create(ctx context.Context, title *entity.Title, genreIDs []uuid.UUID) error {
	tx, err := tr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create title: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO titles (id, name, year, description, rating, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.Rating,
		title.CategoryID,
		title.CreatedAt,
		title.UpdatedAt,
	)
	if err != nil {
		tr.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	for _, genreID := range genreIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			title.ID, genreID)
		if err != nil {
			return fmt.Errorf("link genre %s to title %s: %w",
				genreID.String(), title.ID.String(), err)
		}
	}

	return tx.Commit(ctx)
}

func (tr *titleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	query := `
		SELECT t.id, t.name, t.year, t.description, t.rating, t.category_id,
		       t.created_at, t.updated_at, c.id, c.name, c.slug
		FROM titles t
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1
	`

	title, err := scanTitle(tr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return nil, fmt.Errorf("find title by ID %s: %w", id.String(), err)
	}

	return title, nil
}

func scanTitle(row pgx.Row) (*entity.Title, error) {
	var title entity.Title
	var category entity.Category
	err := row.Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.Rating,
		&title.CategoryID,
		&title.CreatedAt,
		&title.UpdatedAt,
		&category.ID,
		&category.Name,
		&category.Slug,
	)
	if err != nil {
		return nil, err
	}
	title.Category = &category
	return &title, nil
}

const titleFilterClause = `
		  ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR EXISTS (
		        SELECT 1 FROM title_genres tg
		        JOIN genres g ON g.id = tg.genre_id
		        WHERE tg.title_id = t.id AND g.slug = $2))
		  AND ($3 = '' OR t.name ILIKE '%' || $3 || '%')
		  AND ($4 = 0 OR t.year = $4)
`

func (tr *titleRepository) FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error) {
	query := `
		SELECT t.id, t.name, t.year, t.description, t.rating, t.category_id,
		       t.created_at, t.updated_at, c.id, c.name, c.slug
		FROM titles t
		JOIN categories c ON c.id = t.category_id
		WHERE ` + titleFilterClause + `
		ORDER BY t.created_at DESC
		LIMIT $5 OFFSET $6
	`

	rows, err := tr.db.Query(ctx, query,
		filter.CategorySlug, filter.GenreSlug, filter.Name, filter.Year,
		limit, offset)
	if err != nil {
		tr.log.Error("Failed to list titles",
			zap.Error(err),
			zap.Any("filter", filter),
		)
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.Title
	for rows.Next() {
		title, err := scanTitle(rows)
		if err != nil {
			tr.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles rows: %w", err)
	}

	return titles, nil
}

func (tr *titleRepository) CountAll(ctx context.Context, filter TitleFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM titles t
		JOIN categories c ON c.id = t.category_id
		WHERE ` + titleFilterClause

	var count int64
	err := tr.db.QueryRow(ctx, query,
		filter.CategorySlug, filter.GenreSlug, filter.Name, filter.Year).Scan(&count)
	if err != nil {
		tr.log.Error("Failed to count titles", zap.Error(err))
		return 0, fmt.Errorf("count titles: %w", err)
	}

	return count, nil
}

// Update writes the mutable columns. Rating is deliberately excluded: it
// belongs to the review recompute.
func (tr *titleRepository) Update(ctx context.Context, title *entity.Title) error {
	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.UpdatedAt,
	)
	if err != nil {
		tr.log.Error("Failed to update title",
			zap.Error(err),
			zap.String("title_id", title.ID.String()),
		)
		return fmt.Errorf("update title %s: %w", title.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SetGenres replaces the title's genre links in one transaction.
func (tr *titleRepository) SetGenres(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	tx, err := tr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin set genres: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, titleID); err != nil {
		return fmt.Errorf("clear genres for title %s: %w", titleID.String(), err)
	}

	for _, genreID := range genreIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			titleID, genreID)
		if err != nil {
			return fmt.Errorf("link genre %s to title %s: %w",
				genreID.String(), titleID.String(), err)
		}
	}

	return tx.Commit(ctx)
}

func (tr *titleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM titles WHERE id = $1`

	result, err := tr.db.Exec(ctx, query, id)
	if err != nil {
		tr.log.Error("Failed to delete title",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return fmt.Errorf("delete title %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	tr.log.Info("Title deleted", zap.String("title_id", id.String()))
	return nil
}
