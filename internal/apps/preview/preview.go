// Package preview renders a phone-frame HTML mock of an app so users can see
// their project before any APK exists.
package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/appquanta/appquanta-backend/internal/apps/domain"
)

// Render defaults, applied when the record leaves the field unset.
const (
	DefaultColor = "#4E9FFF"
	DefaultType  = "app"
)

var defaultScreens = []string{"Home", "About", "Contact"}

// templateData is what every preview template receives.
type templateData struct {
	Name    string
	Color   template.CSS
	Screens []string
	Type    string
}

// Render produces a full HTML document for the app. The template is chosen by
// app type; unknown types fall back to the generic one.
func Render(app *domain.App) (string, error) {
	data := templateData{
		Name:    app.Name,
		Color:   template.CSS(DefaultColor),
		Screens: defaultScreens,
		Type:    DefaultType,
	}
	if app.Color != nil && *app.Color != "" {
		data.Color = template.CSS(*app.Color)
	}
	if len(app.Screens) > 0 {
		data.Screens = app.Screens
	}
	if app.Type != nil && *app.Type != "" {
		data.Type = *app.Type
	}

	tpl, ok := templates[data.Type]
	if !ok {
		tpl = templates["app"]
	}

	// Generic navigation caps out at 4 items.
	navScreens := data.Screens
	if len(navScreens) > 4 {
		navScreens = navScreens[:4]
	}

	var buf bytes.Buffer
	err := tpl.Execute(&buf, struct {
		templateData
		NavScreens []string
	}{data, navScreens})
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}
