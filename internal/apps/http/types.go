package http

import "github.com/appquanta/appquanta-backend/internal/apps/domain"

type createReq struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Status      string   `json:"status"`
	Icon        *string  `json:"icon"`
	Color       *string  `json:"color"`
	Screens     []string `json:"screens"`
	Type        *string  `json:"type"`
}

func (r createReq) toDomain() domain.CreateApp {
	return domain.CreateApp{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Icon:        r.Icon,
		Color:       r.Color,
		Screens:     r.Screens,
		Type:        r.Type,
	}
}

// updateReq mirrors domain.UpdateApp: absent (or null) fields stay untouched.
type updateReq struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	Screens     *[]string `json:"screens"`
	Type        *string   `json:"type"`
}

func (r updateReq) toDomain() domain.UpdateApp {
	return domain.UpdateApp{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Icon:        r.Icon,
		Color:       r.Color,
		Screens:     r.Screens,
		Type:        r.Type,
	}
}
