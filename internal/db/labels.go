package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateLabel indicates a label with the same name already exists for
// the user.
var ErrDuplicateLabel = errors.New("label already exists")

// CreateLabel inserts a new label for the user. Returns ErrDuplicateLabel on
// a name collision.
func (db *DB) CreateLabel(ctx context.Context, userID uuid.UUID, name, color string) (*Label, error) {
	var l Label
	err := db.pool.QueryRow(ctx,
		`INSERT INTO labels (user_id, name, color)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, name, color, created_at`,
		userID, name, color,
	).Scan(&l.ID, &l.UserID, &l.Name, &l.Color, &l.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateLabel
		}
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	return &l, nil
}

// ListLabels returns all labels owned by a user, sorted by name.
func (db *DB) ListLabels(ctx context.Context, userID uuid.UUID) ([]*Label, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, color, created_at
		 FROM labels
		 WHERE user_id = $1
		 ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	labels := []*Label{}
	for rows.Next() {
		var l Label
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Color, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	return labels, nil
}

// GetLabel retrieves a label by ID scoped to the owning user. Returns nil
// when not found.
func (db *DB) GetLabel(ctx context.Context, userID, labelID uuid.UUID) (*Label, error) {
	var l Label
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, color, created_at
		 FROM labels
		 WHERE id = $1 AND user_id = $2`,
		labelID, userID,
	).Scan(&l.ID, &l.UserID, &l.Name, &l.Color, &l.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get label: %w", err)
	}
	return &l, nil
}

// UpdateLabel applies the provided fields to a label. Nil fields are left
// unchanged. Returns nil when the label does not exist and ErrDuplicateLabel
// on a name collision.
func (db *DB) UpdateLabel(ctx context.Context, userID, labelID uuid.UUID, name, color *string) (*Label, error) {
	current, err := db.GetLabel(ctx, userID, labelID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	newName := current.Name
	if name != nil {
		newName = *name
	}
	newColor := current.Color
	if color != nil {
		newColor = *color
	}

	var l Label
	err = db.pool.QueryRow(ctx,
		`UPDATE labels
		 SET name = $1, color = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, user_id, name, color, created_at`,
		newName, newColor, labelID, userID,
	).Scan(&l.ID, &l.UserID, &l.Name, &l.Color, &l.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateLabel
		}
		return nil, fmt.Errorf("failed to update label: %w", err)
	}
	return &l, nil
}

// DeleteLabel removes a label. Returns false when the label does not exist.
func (db *DB) DeleteLabel(ctx context.Context, userID, labelID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM labels WHERE id = $1 AND user_id = $2`,
		labelID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete label: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
