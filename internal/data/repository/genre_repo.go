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

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindBySlug(ctx context.Context, slug string) (*entity.Genre, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]*entity.Genre, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Genre, error)
	CountAll(ctx context.Context, search string) (int64, error)
	FindByTitleID(ctx context.Context, titleID uuid.UUID) ([]entity.Genre, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (gr *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `INSERT INTO genres (id, name, slug) VALUES ($1, $2, $3)`

	_, err := gr.db.Exec(ctx, query, genre.ID, genre.Name, genre.Slug)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		gr.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("slug", genre.Slug),
		)
		return fmt.Errorf("create genre %s: %w", genre.Slug, err)
	}

	return nil
}

func (gr *genreRepository) FindBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	query := `SELECT id, name, slug FROM genres WHERE slug = $1`

	var genre entity.Genre
	err := gr.db.QueryRow(ctx, query, slug).Scan(&genre.ID, &genre.Name, &genre.Slug)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		gr.log.Error("Failed to find genre by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find genre by slug %s: %w", slug, err)
	}

	return &genre, nil
}

// FindBySlugs resolves a set of slugs. Callers compare lengths to detect
// unknown slugs.
func (gr *genreRepository) FindBySlugs(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, slug FROM genres WHERE slug = ANY($1)`

	rows, err := gr.db.Query(ctx, query, slugs)
	if err != nil {
		gr.log.Error("Failed to find genres by slugs", zap.Error(err))
		return nil, fmt.Errorf("find genres by slugs: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug); err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres rows: %w", err)
	}

	return genres, nil
}

func (gr *genreRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	query := `
		SELECT id, name, slug
		FROM genres
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := gr.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		gr.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug); err != nil {
			gr.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres rows: %w", err)
	}

	return genres, nil
}

func (gr *genreRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM genres WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var count int64
	if err := gr.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		gr.log.Error("Failed to count genres", zap.Error(err))
		return 0, fmt.Errorf("count genres: %w", err)
	}

	return count, nil
}

func (gr *genreRepository) FindByTitleID(ctx context.Context, titleID uuid.UUID) ([]entity.Genre, error) {
	query := `
		SELECT g.id, g.name, g.slug
		FROM genres g
		JOIN title_genres tg ON tg.genre_id = g.id
		WHERE tg.title_id = $1
		ORDER BY g.name
	`

	rows, err := gr.db.Query(ctx, query, titleID)
	if err != nil {
		gr.log.Error("Failed to find genres by title",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return nil, fmt.Errorf("find genres by title %s: %w", titleID.String(), err)
	}
	defer rows.Close()

	var genres []entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.Slug); err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres rows: %w", err)
	}

	return genres, nil
}

func (gr *genreRepository) DeleteBySlug(ctx context.Context, slug string) error {
	query := `DELETE FROM genres WHERE slug = $1`

	result, err := gr.db.Exec(ctx, query, slug)
	if err != nil {
		gr.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return fmt.Errorf("delete genre %s: %w", slug, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	gr.log.Info("Genre deleted", zap.String("slug", slug))
	return nil
}
