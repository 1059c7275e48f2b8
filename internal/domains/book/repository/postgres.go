package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/pkg/cache"
	"bookshelf-api/pkg/logger"
)

var dialect = goqu.Dialect("postgres")

const bookColumns = `id, title, author, price, published_date, created_at, updated_at, owner_id`

// bookCacheTTL bounds staleness for the id-keyed detail cache.
const bookCacheTTL = 10 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func bookCacheKey(id int64) string {
	return fmt.Sprintf("book:%d", id)
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (title, author, price, published_date, created_at, updated_at, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		b.Title,
		b.Author,
		b.Price,
		b.PublishedDate,
		b.CreatedAt,
		b.UpdatedAt,
		b.OwnerID,
	).Scan(&b.ID)

	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE owner_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list books by owner: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

// FindByIDAndOwner uses a cache-aside read keyed by id only; the owner
// check happens after the fetch so a cached record behaves exactly like
// the owner-scoped SQL lookup.
func (r *postgresRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.Book, error) {
	cacheKey := bookCacheKey(id)

	var cached model.Book
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Error("book cache read failed", err)
	}
	if found {
		if cached.OwnerID != ownerID {
			return nil, model.ErrBookNotFound
		}
		return &cached, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b model.Book
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Price,
		&b.PublishedDate, &b.CreatedAt, &b.UpdatedAt, &b.OwnerID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	// Cache failures must never fail the read.
	_ = r.cache.Set(ctx, cacheKey, &b, bookCacheTTL)

	if b.OwnerID != ownerID {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

func (r *postgresRepository) Search(ctx context.Context, title, author string, limit int) ([]model.Book, error) {
	ds := dialect.From("books").
		Select("id", "title", "author", "price", "published_date", "created_at", "updated_at", "owner_id")

	if title != "" {
		ds = ds.Where(goqu.C("title").ILike("%" + title + "%"))
	}
	if author != "" {
		ds = ds.Where(goqu.C("author").ILike("%" + author + "%"))
	}

	ds = ds.Order(goqu.C("id").Asc()).Limit(uint(limit))

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

// Update is a single atomic statement: COALESCE keeps stored values for
// fields absent from the patch, and the WHERE clause re-checks ownership
// so a concurrent owner change cannot be raced.
func (r *postgresRepository) Update(ctx context.Context, id, ownerID int64, patch model.UpdateBookRequest) error {
	query := `
		UPDATE books SET
			title          = COALESCE($1, title),
			author         = COALESCE($2, author),
			price          = COALESCE($3, price),
			published_date = COALESCE($4, published_date),
			created_at     = COALESCE($5, created_at),
			updated_at     = COALESCE($6, updated_at),
			owner_id       = COALESCE($7, owner_id)
		WHERE id = $8 AND owner_id = $9
	`

	tag, err := r.pool.Exec(ctx, query,
		patch.Title,
		patch.Author,
		patch.Price,
		patch.PublishedDate,
		patch.CreatedAt,
		patch.UpdatedAt,
		patch.OwnerID,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	if err := r.cache.Delete(ctx, bookCacheKey(id)); err != nil {
		logger.Error("book cache invalidation failed", err)
	}

	return nil
}

// Delete is conditioned on the same id+owner pair the lookup validated,
// closing the window where ownership changes between check and delete.
func (r *postgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM books WHERE id = $1 AND owner_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	if err := r.cache.Delete(ctx, bookCacheKey(id)); err != nil {
		logger.Error("book cache invalidation failed", err)
	}

	return nil
}

func collectBooks(rows pgx.Rows) ([]model.Book, error) {
	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Price,
			&b.PublishedDate, &b.CreatedAt, &b.UpdatedAt, &b.OwnerID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}
