package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/appquanta/appquanta-backend/internal/apps/domain"
)

const appColumns = `id, name, description, status, icon, color, screens, type, created_at, updated_at, user_id, apk_url`

// AppRepository provides persistence operations for apps. Every operation on
// a single record is scoped by user_id, so a record owned by someone else is
// indistinguishable from one that does not exist.
type AppRepository struct {
	db *sql.DB
}

// NewAppRepository creates a new app repository.
func NewAppRepository(db *sql.DB) *AppRepository {
	return &AppRepository{db: db}
}

// List returns all apps owned by the given user, newest first.
func (r *AppRepository) List(ctx context.Context, userID string) ([]domain.App, error) {
	const q = `
SELECT ` + appColumns + `
FROM apps
WHERE user_id = $1
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}
	defer rows.Close()

	out := make([]domain.App, 0, 16)
	for rows.Next() {
		app, err := scanApp(rows)
		if err != nil {
			return nil, fmt.Errorf("scan app: %w", err)
		}
		out = append(out, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the app with the given id if it is owned by the user.
func (r *AppRepository) Get(ctx context.Context, id, userID string) (*domain.App, error) {
	const q = `
SELECT ` + appColumns + `
FROM apps
WHERE id = $1 AND user_id = $2;
`
	app, err := scanApp(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get app: %w", err)
	}
	return app, nil
}

// Create inserts a new app owned by the given user.
func (r *AppRepository) Create(ctx context.Context, userID string, in domain.CreateApp) (*domain.App, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name required")
	}
	if userID == "" {
		return nil, fmt.Errorf("user id required")
	}

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	now := time.Now().UTC()

	const q = `
INSERT INTO apps (id, name, description, status, icon, color, screens, type, created_at, updated_at, user_id, apk_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, $10, NULL)
RETURNING ` + appColumns + `;
`
	app, err := scanApp(r.db.QueryRowContext(ctx, q,
		uuid.NewString(), in.Name, in.Description, status,
		in.Icon, in.Color, pq.Array(in.Screens), in.Type, now, userID,
	))
	if err != nil {
		return nil, fmt.Errorf("create app: %w", err)
	}
	return app, nil
}

// Update applies the non-nil fields of the patch and refreshes updated_at.
// An empty patch still bumps updated_at.
func (r *AppRepository) Update(ctx context.Context, id, userID string, patch domain.UpdateApp) (*domain.App, error) {
	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 10)

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Icon != nil {
		add("icon", *patch.Icon)
	}
	if patch.Color != nil {
		add("color", *patch.Color)
	}
	if patch.Screens != nil {
		add("screens", pq.Array(*patch.Screens))
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id, userID)
	q := fmt.Sprintf(`
UPDATE apps
SET %s
WHERE id = $%d AND user_id = $%d
RETURNING `+appColumns+`;
`, strings.Join(sets, ", "), len(args)-1, len(args))

	app, err := scanApp(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update app: %w", err)
	}
	return app, nil
}

// Delete removes the app if it is owned by the user. Returns false without
// error when nothing matched.
func (r *AppRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	const q = `DELETE FROM apps WHERE id = $1 AND user_id = $2;`

	result, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete app: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// SetAPKURL records the uploaded artifact URL on the app.
func (r *AppRepository) SetAPKURL(ctx context.Context, id, userID, url string) (*domain.App, error) {
	const q = `
UPDATE apps
SET apk_url = $3, updated_at = $4
WHERE id = $1 AND user_id = $2
RETURNING ` + appColumns + `;
`
	app, err := scanApp(r.db.QueryRowContext(ctx, q, id, userID, url, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set apk url: %w", err)
	}
	return app, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApp(row rowScanner) (*domain.App, error) {
	var (
		app     domain.App
		screens pq.StringArray
	)
	err := row.Scan(
		&app.ID, &app.Name, &app.Description, &app.Status,
		&app.Icon, &app.Color, &screens, &app.Type,
		&app.CreatedAt, &app.UpdatedAt, &app.UserID, &app.APKURL,
	)
	if err != nil {
		return nil, err
	}
	app.Screens = screens
	return &app, nil
}
