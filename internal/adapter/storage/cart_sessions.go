package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartIDStore = (*CartSessionsRepository)(nil)

// CartSessionsRepository keeps the active cart id of each browser
// session in the cart_sessions table.
type CartSessionsRepository struct {
	sqldb sqldb
}

func NewCartSessionsRepository(sqldb sqldb) CartSessionsRepository {
	return CartSessionsRepository{sqldb}
}

func (r CartSessionsRepository) LoadCartID(
	ctx context.Context, sessionID string,
) (string, error) {
	const op = "CartSessionsRepository.LoadCartID"

	query := `SELECT cart_id FROM cart_sessions WHERE session_id = $1;`

	var cartID string
	err := r.sqldb.QueryRowContext(ctx, query, sessionID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return cartID, nil
}

func (r CartSessionsRepository) SaveCartID(
	ctx context.Context, sessionID, cartID string,
) error {
	const op = "CartSessionsRepository.SaveCartID"

	query := `
		INSERT INTO cart_sessions (session_id, cart_id)
		VALUES ($1, $2)
		ON CONFLICT (session_id) DO UPDATE SET
			cart_id = EXCLUDED.cart_id,
			updated_at = now();
	`

	if _, err := r.sqldb.ExecContext(ctx, query, sessionID, cartID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartSessionsRepository) DeleteCartID(
	ctx context.Context, sessionID string,
) error {
	const op = "CartSessionsRepository.DeleteCartID"

	query := `DELETE FROM cart_sessions WHERE session_id = $1;`

	if _, err := r.sqldb.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
