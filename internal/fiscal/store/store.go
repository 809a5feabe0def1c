package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/andeantex/facturador/internal/fiscal"
)

const pgUniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// AllocateNumber increments the per-kind counter in a single atomic upsert
// and commits immediately. The row lock lasts only this statement, so
// concurrent emissions of unrelated orders never wait behind a gateway
// round trip. Counters are never decremented: a failed emission consumes
// its number.
func (s *Store) AllocateNumber(ctx context.Context, kind fiscal.Kind) (int, error) {
	query := `
		INSERT INTO fiscal_numbering (kind, last_number)
		VALUES ($1, 1)
		ON CONFLICT (kind) DO UPDATE SET last_number = fiscal_numbering.last_number + 1
		RETURNING last_number
	`

	var number int
	if err := s.db.QueryRowContext(ctx, query, kind).Scan(&number); err != nil {
		return 0, fmt.Errorf("allocating number: %w", err)
	}

	return number, nil
}

func (s *Store) NumberInUse(ctx context.Context, kind fiscal.Kind, series string, number int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM fiscal_documents
			WHERE kind = $1 AND series = $2 AND number = $3
		)
	`

	var taken bool
	if err := s.db.QueryRowContext(ctx, query, kind, series, number).Scan(&taken); err != nil {
		return false, fmt.Errorf("checking number: %w", err)
	}

	return taken, nil
}

const selectDocumentColumns = `
	d.id, d.order_id, d.kind, d.series, d.number,
	COALESCE(d.pdf_link, ''), COALESCE(d.doc_hash, ''), COALESCE(d.qr_payload, ''),
	d.issued_at
`

// DocumentByOrder returns the order's fiscal document, or nil when the order
// has none yet.
func (s *Store) DocumentByOrder(ctx context.Context, orderID int64) (*fiscal.Document, error) {
	query := `SELECT ` + selectDocumentColumns + ` FROM fiscal_documents d WHERE d.order_id = $1`

	var doc fiscal.Document

	err := s.db.QueryRowContext(ctx, query, orderID).Scan(
		&doc.ID, &doc.OrderID, &doc.Kind, &doc.Series, &doc.Number,
		&doc.PDFLink, &doc.Hash, &doc.QRPayload,
		&doc.IssuedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	return &doc, nil
}

// emissionLockKey derives the advisory lock key serializing emission
// attempts for one order.
func emissionLockKey(orderID int64) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "emission:%d", orderID)

	return int64(h.Sum64())
}

// ClaimEmission takes a session-level advisory lock on the order from a
// dedicated pool connection. A transaction-scoped lock cannot span the
// gateway call, so the lock lives on its own session and is released
// explicitly by the claim.
func (s *Store) ClaimEmission(ctx context.Context, orderID int64) (fiscal.EmissionClaim, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring emission connection: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", emissionLockKey(orderID)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("acquiring emission lock: %w", err)
	}

	return &emissionClaim{conn: conn, key: emissionLockKey(orderID)}, nil
}

type emissionClaim struct {
	conn *sql.Conn
	key  int64
}

// Release unlocks and hands the connection back to the pool. The unlock must
// run on the session that locked; on failure the session is broken and the
// pool discards it, taking the lock with it, so the error is only logged.
func (c *emissionClaim) Release() {
	if _, err := c.conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", c.key); err != nil {
		slog.Error("failed to release emission lock", "error", err)
	}

	c.conn.Close()
}

// SaveDocument inserts the fiscal document and stamps the order's computed
// total in one transaction. Callers hold the order's emission claim, which
// is the serialization point; the existence re-check and the unique
// constraints are backstops.
func (s *Store) SaveDocument(ctx context.Context, doc *fiscal.Document, orderTotal decimal.Decimal) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning emission tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM fiscal_documents WHERE order_id = $1)", doc.OrderID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("checking existing document: %w", err)
	}

	if exists {
		return fiscal.ErrAlreadyEmitted
	}

	insert := `
		INSERT INTO fiscal_documents (order_id, kind, series, number, pdf_link, doc_hash, qr_payload, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, issued_at
	`

	err = tx.QueryRowContext(ctx, insert,
		doc.OrderID,
		doc.Kind,
		doc.Series,
		doc.Number,
		doc.PDFLink,
		doc.Hash,
		doc.QRPayload,
	).Scan(&doc.ID, &doc.IssuedAt)
	if err != nil {
		return mapInsertError(err)
	}

	update := `
		UPDATE orders
		SET total = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := tx.ExecContext(ctx, update, orderTotal, doc.OrderID); err != nil {
		return fmt.Errorf("stamping order total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing emission tx: %w", err)
	}

	return nil
}

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "order_id") {
			return fiscal.ErrAlreadyEmitted
		}

		return fiscal.ErrNumberTaken
	}

	return fmt.Errorf("inserting document: %w", err)
}

func (s *Store) PaymentConfig(ctx context.Context) (*fiscal.PaymentConfig, error) {
	query := `
		SELECT account_number, cci, account_active, COALESCE(qr_image, '')
		FROM payment_config
		ORDER BY id ASC
		LIMIT 1
	`

	var cfg fiscal.PaymentConfig

	err := s.db.QueryRowContext(ctx, query).Scan(
		&cfg.AccountNumber, &cfg.CCI, &cfg.AccountActive, &cfg.QRImage,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fiscal.ErrNoPaymentConfig
		}

		return nil, fmt.Errorf("getting payment config: %w", err)
	}

	return &cfg, nil
}
