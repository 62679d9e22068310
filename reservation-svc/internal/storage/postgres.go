package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ravintola-sinet/reservation-svc/internal/domain"
	"ravintola-sinet/reservation-svc/internal/service"
)

// reservationLockClass namespaces the slot advisory locks.
const reservationLockClass = 4242

const reservationColumns = `
	id, public_token, start_datetime, name, phone, COALESCE(email, '') AS email, party_size, baby_seats,
	preferred_table, tables_needed, COALESCE(notes, '') AS notes, status, created_at`

type PostgresRepository struct {
	DB *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func slotLockKey(start time.Time) int32 {
	return int32(start.Unix() / 60)
}

// CreateInSlot serialises writers of one slot with a transaction scoped
// advisory lock, sums the committed usage, runs check and inserts the
// reservation with its pre-order lines. Nothing is written when check fails.
func (r *PostgresRepository) CreateInSlot(ctx context.Context, res *domain.Reservation, check service.SlotCheck) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, reservationLockClass, slotLockKey(res.StartAt)); err != nil {
		return fmt.Errorf("failed to lock slot: %w", err)
	}

	var used domain.SlotUsage
	if err := tx.GetContext(ctx, &used, `
		SELECT COALESCE(SUM(tables_needed), 0) AS tables,
		       COALESCE(SUM(party_size), 0) AS chairs,
		       COALESCE(SUM(baby_seats), 0) AS baby_seats
		FROM reservations
		WHERE start_datetime = $1 AND status <> $2
	`, res.StartAt, domain.StatusCancelled); err != nil {
		return fmt.Errorf("failed to sum slot usage: %w", err)
	}

	if err := check(used); err != nil {
		return err
	}

	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO reservations (public_token, start_datetime, name, phone, email, party_size, baby_seats, preferred_table, tables_needed, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`, res.PublicToken, res.StartAt, res.Name, res.Phone, res.Email, res.PartySize, res.BabySeats, res.PreferredTable, res.TablesNeeded, res.Notes, res.Status).
		Scan(&res.ID, &res.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	for i := range res.Items {
		item := &res.Items[i]
		item.ReservationID = res.ID
		if err := tx.QueryRowxContext(ctx, `
			INSERT INTO reservation_items (reservation_id, menu_item_id, name, qty, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, res.ID, item.MenuItemID, item.Name, item.Qty, item.UnitPrice).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to insert pre-order line: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	return r.getReservation(ctx, `WHERE id = $1`, id)
}

func (r *PostgresRepository) GetReservationByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	return r.getReservation(ctx, `WHERE public_token = $1`, token)
}

func (r *PostgresRepository) getReservation(ctx context.Context, where string, arg interface{}) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.DB.GetContext(ctx, &res, `SELECT `+reservationColumns+` FROM reservations `+where, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	res.Items = []domain.ReservationItem{}
	if err := r.DB.SelectContext(ctx, &res.Items, `
		SELECT id, reservation_id, menu_item_id, name, qty, unit_price
		FROM reservation_items
		WHERE reservation_id = $1
		ORDER BY id
	`, res.ID); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *PostgresRepository) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d)", n, n, n)
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY start_datetime DESC, created_at DESC LIMIT $%d", len(args))

	reservations := []domain.Reservation{}
	if err := r.DB.SelectContext(ctx, &reservations, query, args...); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, from, to string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE reservations SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

type slotUsageRow struct {
	StartAt time.Time `db:"start_datetime"`
	domain.SlotUsage
}

func (r *PostgresRepository) SlotUsageBetween(ctx context.Context, from, to time.Time) (map[int64]domain.SlotUsage, error) {
	var rows []slotUsageRow
	if err := r.DB.SelectContext(ctx, &rows, `
		SELECT start_datetime,
		       SUM(tables_needed) AS tables,
		       SUM(party_size) AS chairs,
		       SUM(baby_seats) AS baby_seats
		FROM reservations
		WHERE start_datetime >= $1 AND start_datetime < $2 AND status <> $3
		GROUP BY start_datetime
	`, from, to, domain.StatusCancelled); err != nil {
		return nil, err
	}

	usage := make(map[int64]domain.SlotUsage, len(rows))
	for _, row := range rows {
		usage[row.StartAt.Unix()] = row.SlotUsage
	}
	return usage, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			id SERIAL PRIMARY KEY,
			public_token VARCHAR(36) NOT NULL UNIQUE,
			start_datetime TIMESTAMPTZ NOT NULL,
			name VARCHAR(120) NOT NULL,
			phone VARCHAR(40) NOT NULL,
			email VARCHAR(254),
			party_size INTEGER NOT NULL CHECK (party_size >= 1),
			baby_seats INTEGER NOT NULL DEFAULT 0 CHECK (baby_seats >= 0),
			preferred_table INTEGER,
			tables_needed INTEGER NOT NULL DEFAULT 1,
			notes TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS reservations_start_idx ON reservations (start_datetime)",
		`CREATE TABLE IF NOT EXISTS reservation_items (
			id SERIAL PRIMARY KEY,
			reservation_id INTEGER NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL,
			name VARCHAR(120) NOT NULL DEFAULT '',
			qty INTEGER NOT NULL CHECK (qty > 0),
			unit_price NUMERIC(8, 2) NOT NULL,
			UNIQUE (reservation_id, menu_item_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

var _ service.ReservationRepository = (*PostgresRepository)(nil)
