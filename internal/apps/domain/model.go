package domain

import (
	"errors"
	"time"
)

// ErrNotFound covers both a missing record and a record owned by another
// user. Handlers surface the two identically so that the existence of other
// users' apps never leaks.
var ErrNotFound = errors.New("app not found")

// Statuses an app moves through. Status is free-form text in the store;
// these are the values the product writes.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// App is one user-owned application project.
type App struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	Screens     []string  `json:"screens"`
	Type        *string   `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      string    `json:"user_id"`
	APKURL      *string   `json:"apk_url"`
}

// CreateApp carries the caller-supplied fields for a new app.
// The store assigns id, owner, timestamps, and the "active" status default.
type CreateApp struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Status      string   `json:"status"`
	Icon        *string  `json:"icon"`
	Color       *string  `json:"color"`
	Screens     []string `json:"screens"`
	Type        *string  `json:"type"`
}

// UpdateApp is a partial update. A nil field means "leave unchanged";
// there is no way to clear a field back to null through a patch.
type UpdateApp struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	Screens     *[]string `json:"screens"`
	Type        *string   `json:"type"`
}

// Empty reports whether the patch touches no fields.
func (u UpdateApp) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil &&
		u.Icon == nil && u.Color == nil && u.Screens == nil && u.Type == nil
}
