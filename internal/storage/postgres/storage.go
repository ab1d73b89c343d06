package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/domain/repository"
)

// DB is the pool surface the storage relies on; it is satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. Order items
// and digital content descriptors are stored as JSONB documents and
// filtered with containment queries.
type Storage struct {
	pool   DB
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type bookRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (DB, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Books() repository.BookRepository {
	return &bookRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS books (
            id UUID PRIMARY KEY,
            title TEXT NOT NULL,
            author TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL DEFAULT '',
            target_audience TEXT NOT NULL DEFAULT '',
            age_min INT,
            age_max INT,
            language TEXT NOT NULL DEFAULT 'English',
            page_count INT NOT NULL DEFAULT 0,
            published_date TIMESTAMPTZ,
            isbn TEXT NOT NULL DEFAULT '',
            publisher TEXT NOT NULL DEFAULT '',
            price NUMERIC(12,2) NOT NULL DEFAULT 0,
            cover_image TEXT NOT NULL DEFAULT '',
            digital_content JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            items JSONB NOT NULL,
            status TEXT NOT NULL,
            total NUMERIC(12,2) NOT NULL DEFAULT 0,
            ordered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, ordered_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_items ON orders USING GIN (items jsonb_path_ops)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, role, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.Role, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- BookRepository implementation ---

const bookColumns = `id, title, author, description, category, target_audience, age_min, age_max,
       language, page_count, published_date, isbn, publisher, price, cover_image, digital_content,
       created_at, updated_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	var (
		b              model.Book
		ageMin, ageMax *int
		dcRaw          []byte
	)
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.Category, &b.TargetAudience,
		&ageMin, &ageMax, &b.Language, &b.PageCount, &b.PublishedDate, &b.ISBN,
		&b.Publisher, &b.Price, &b.CoverImage, &dcRaw, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ageMin != nil && ageMax != nil {
		b.AgeRange = &model.AgeRange{Min: *ageMin, Max: *ageMax}
	}
	if len(dcRaw) > 0 {
		var dc model.DigitalContent
		if err := json.Unmarshal(dcRaw, &dc); err != nil {
			return nil, fmt.Errorf("decode digital content: %w", err)
		}
		b.DigitalContent = &dc
	}
	return &b, nil
}

func bookArgs(b *model.Book) ([]any, error) {
	var ageMin, ageMax *int
	if b.AgeRange != nil {
		ageMin, ageMax = &b.AgeRange.Min, &b.AgeRange.Max
	}
	var dcRaw []byte
	if b.DigitalContent != nil {
		raw, err := json.Marshal(b.DigitalContent)
		if err != nil {
			return nil, fmt.Errorf("encode digital content: %w", err)
		}
		dcRaw = raw
	}
	return []any{
		b.ID, b.Title, b.Author, b.Description, b.Category, b.TargetAudience,
		ageMin, ageMax, b.Language, b.PageCount, b.PublishedDate, b.ISBN,
		b.Publisher, b.Price, b.CoverImage, dcRaw,
	}, nil
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	const query = `INSERT INTO books
        (id, title, author, description, category, target_audience, age_min, age_max,
         language, page_count, published_date, isbn, publisher, price, cover_image, digital_content)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING created_at, updated_at`
	args, err := bookArgs(book)
	if err != nil {
		return err
	}
	err = r.storage.pool.QueryRow(ctx, query, args...).Scan(&book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id=$1`
	book, err := scanBook(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return book, nil
}

func (r *bookRepository) Update(ctx context.Context, book *model.Book) error {
	const query = `UPDATE books SET
        title=$2, author=$3, description=$4, category=$5, target_audience=$6,
        age_min=$7, age_max=$8, language=$9, page_count=$10, published_date=$11,
        isbn=$12, publisher=$13, price=$14, cover_image=$15, digital_content=$16,
        updated_at=NOW()
        WHERE id=$1`
	args, err := bookArgs(book)
	if err != nil {
		return err
	}
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM books WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, search string) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`
	args := []any{}
	if search != "" {
		query = `SELECT ` + bookColumns + ` FROM books
            WHERE title ILIKE $1 OR author ILIKE $1 OR description ILIKE $1
               OR category ILIKE $1 OR publisher ILIKE $1
            ORDER BY created_at DESC`
		args = append(args, "%"+search+"%")
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBooks(rows)
}

// ListPurchased returns every distinct book contained in an entitling
// order of the user, most recent purchase first. The containment filter
// matches the per-item productId inside the order items document.
func (r *bookRepository) ListPurchased(ctx context.Context, userID int64, statuses []model.OrderStatus) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + `, MAX(o.ordered_at) AS last_purchase
        FROM books b
        JOIN orders o ON o.user_id = $1
         AND o.status = ANY($2)
         AND o.items @> jsonb_build_array(jsonb_build_object('productId', b.id::text))
        GROUP BY b.id
        ORDER BY last_purchase DESC`

	rows, err := r.storage.pool.Query(ctx, query, userID, statusStrings(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Book
	for rows.Next() {
		var (
			b              model.Book
			ageMin, ageMax *int
			dcRaw          []byte
			lastPurchase   time.Time
		)
		err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.Category, &b.TargetAudience,
			&ageMin, &ageMax, &b.Language, &b.PageCount, &b.PublishedDate, &b.ISBN,
			&b.Publisher, &b.Price, &b.CoverImage, &dcRaw, &b.CreatedAt, &b.UpdatedAt,
			&lastPurchase,
		)
		if err != nil {
			return nil, err
		}
		if ageMin != nil && ageMax != nil {
			b.AgeRange = &model.AgeRange{Min: *ageMin, Max: *ageMax}
		}
		if len(dcRaw) > 0 {
			var dc model.DigitalContent
			if err := json.Unmarshal(dcRaw, &dc); err != nil {
				return nil, fmt.Errorf("decode digital content: %w", err)
			}
			b.DigitalContent = &dc
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func collectBooks(rows pgx.Rows) ([]model.Book, error) {
	var result []model.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, userID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, items, status, total) VALUES ($1, $2, $3, $4)
                   RETURNING id, ordered_at, updated_at`
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	order := model.Order{UserID: userID, Items: items, Status: model.OrderStatusPending, Total: total}
	err = r.storage.pool.QueryRow(ctx, query, userID, raw, model.OrderStatusPending, total).
		Scan(&order.ID, &order.OrderedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, items, status, total, ordered_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY ordered_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HasEntitlement reports whether any order of the user in one of the
// given statuses contains the product. The JSONB containment filter is
// the relational form of a document query on items.productId.
func (r *orderRepository) HasEntitlement(ctx context.Context, userID int64, productID uuid.UUID, statuses []model.OrderStatus) (bool, error) {
	const query = `SELECT EXISTS (
        SELECT 1 FROM orders
        WHERE user_id = $1 AND status = ANY($2) AND items @> $3::jsonb
    )`
	filter, err := json.Marshal([]map[string]string{{"productId": productID.String()}})
	if err != nil {
		return false, fmt.Errorf("encode entitlement filter: %w", err)
	}

	var entitled bool
	if err := r.storage.pool.QueryRow(ctx, query, userID, statusStrings(statuses), filter).Scan(&entitled); err != nil {
		return false, err
	}
	return entitled, nil
}

func (r *orderRepository) SelectBatchForFulfillment(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT id, user_id, items, status, total, ordered_at, updated_at
                   FROM orders
                   WHERE status NOT IN ('delivered', 'cancelled')
                   ORDER BY updated_at
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus advances order status inside a transaction. Transitions
// that do not move the lifecycle forward are ignored so that repeated
// provider snapshots stay idempotent.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var current model.OrderStatus
		if err := tx.QueryRow(ctx, selectQuery, orderID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !model.CanTransition(current, status) {
			return nil
		}

		const updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, updateQuery, status, orderID); err != nil {
			return err
		}
		return nil
	})
}

func scanOrder(rows pgx.Rows) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	if err := rows.Scan(&o.ID, &o.UserID, &items, &o.Status, &o.Total, &o.OrderedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &o, nil
}

func statusStrings(statuses []model.OrderStatus) []string {
	result := make([]string, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, string(s))
	}
	return result
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
