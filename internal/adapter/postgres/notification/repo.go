// Package notification implements notification persistence using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	table   = "notifications"
	columns = "id, user_id, title, message, type, read, created_at"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new notification repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `INSERT INTO notifications (id, user_id, title, message, type, read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL, n.ID, n.UserID, n.Title, n.Message, string(n.Type), n.Read, n.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	return nil
}

const existsSinceSQL = `SELECT EXISTS(
    SELECT 1 FROM notifications WHERE user_id = $1 AND title = $2 AND created_at >= $3
)`

// ExistsSince reports whether the user already got a notification with this
// title at or after since.
func (r *Repo) ExistsSince(ctx context.Context, userID uuid.UUID, title string, since time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSinceSQL, userID, title, since).Scan(&exists); err != nil {
		return false, fmt.Errorf("check notifications for user %s: %w", userID, err)
	}
	return exists, nil
}

// ListByUser returns the notifications of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder.Select(columns).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if unreadOnly {
		sel = sel.Where(sq.Eq{"read": false})
	}
	if limit > 0 {
		sel = sel.Limit(uint64(limit))
	}
	if offset > 0 {
		sel = sel.Offset(uint64(offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifications: %w", err)
	}

	var rows []struct {
		ID        uuid.UUID `db:"id"`
		UserID    uuid.UUID `db:"user_id"`
		Title     string    `db:"title"`
		Message   string    `db:"message"`
		Type      string    `db:"type"`
		Read      bool      `db:"read"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]*domain.Notification, len(rows))
	for i, row := range rows {
		out[i] = &domain.Notification{
			ID:        row.ID,
			UserID:    row.UserID,
			Title:     row.Title,
			Message:   row.Message,
			Type:      domain.NotificationType(row.Type),
			Read:      row.Read,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

const markReadSQL = `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`

// MarkRead flags a notification of the user as read. Returns
// domain.ErrNotFound if it does not exist or belongs to someone else.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markReadSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
