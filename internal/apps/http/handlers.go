package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/appquanta/appquanta-backend/internal/api/http"
	"github.com/appquanta/appquanta-backend/internal/apps/domain"
	"github.com/appquanta/appquanta-backend/internal/apps/preview"
	"github.com/appquanta/appquanta-backend/internal/auth"
	"github.com/appquanta/appquanta-backend/internal/builds"
)

const notFoundMessage = "App not found or access denied"

// AppStore is the persistence surface the handlers need.
type AppStore interface {
	List(ctx context.Context, userID string) ([]domain.App, error)
	Get(ctx context.Context, id, userID string) (*domain.App, error)
	Create(ctx context.Context, userID string, in domain.CreateApp) (*domain.App, error)
	Update(ctx context.Context, id, userID string, patch domain.UpdateApp) (*domain.App, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
	SetAPKURL(ctx context.Context, id, userID, url string) (*domain.App, error)
}

// ArtifactStore uploads installer artifacts and returns public URLs.
type ArtifactStore interface {
	Upload(ctx context.Context, appID string, body io.Reader, size int64) (string, error)
}

// BuildTracker records and reports per-app APK generation status.
type BuildTracker interface {
	Enqueue(ctx context.Context, appID string) (*builds.BuildStatus, error)
	Get(ctx context.Context, appID string) (*builds.BuildStatus, error)
}

type Handler struct {
	store     AppStore
	artifacts ArtifactStore
	builds    BuildTracker
}

func NewHandler(store AppStore, artifacts ArtifactStore, tracker BuildTracker) *Handler {
	return &Handler{store: store, artifacts: artifacts, builds: tracker}
}

// currentUser resolves the caller identity placed in context by the auth
// middleware. An empty identity on a handler that got this far means the
// route was mounted outside the protected prefixes; reject anyway.
func currentUser(c *gin.Context) (string, bool) {
	userID := auth.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.Fail("Authentication required."))
		return "", false
	}
	return userID, true
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	apps, err := h.store.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to retrieve apps: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.OK("Apps retrieved successfully.", apps))
}

func (h *Handler) get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	app, err := h.store.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Fail(notFoundMessage))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to retrieve app: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.OK("App retrieved successfully.", app))
}

func (h *Handler) create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, httpapi.Fail("App name is required."))
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	app, err := h.store.Create(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to create app: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.OK("App created successfully.", app))
}

func (h *Handler) update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Fail("Invalid request body."))
		return
	}

	app, err := h.store.Update(c.Request.Context(), c.Param("id"), userID, req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Fail(notFoundMessage))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to update app: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.OK("App updated successfully.", app))
}

func (h *Handler) delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to delete app: "+err.Error()))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, httpapi.Fail(notFoundMessage))
		return
	}

	c.JSON(http.StatusOK, httpapi.OK("App deleted successfully.", nil))
}

func (h *Handler) uploadAPK(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	appID := c.Param("id")

	// Resolve ownership before touching storage.
	if _, err := h.store.Get(c.Request.Context(), appID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Fail(notFoundMessage))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to upload APK: "+err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Fail("APK file is required."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to upload APK: "+err.Error()))
		return
	}
	defer file.Close()

	url, err := h.artifacts.Upload(c.Request.Context(), appID, file, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to upload APK: "+err.Error()))
		return
	}

	if _, err := h.store.SetAPKURL(c.Request.Context(), appID, userID, url); err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to upload APK: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.OK("APK uploaded successfully.", gin.H{"apk_url": url}))
}

func (h *Handler) preview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	app, err := h.store.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Fail(notFoundMessage))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to generate preview: "+err.Error()))
		return
	}

	html, err := preview.Render(app)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to generate preview: "+err.Error()))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) generateAPK(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	appID := c.Param("id")

	if _, err := h.store.Get(c.Request.Context(), appID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Fail(notFoundMessage))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to start APK generation: "+err.Error()))
		return
	}

	status, err := h.builds.Enqueue(c.Request.Context(), appID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to start APK generation: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpapi.OK("APK generation started. This feature will be available soon.", status))
}

func (h *Handler) apkStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	appID := c.Param("id")

	app, err := h.store.Get(c.Request.Context(), appID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpapi.Fail(notFoundMessage))
			return
		}
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to get APK status: "+err.Error()))
		return
	}

	status, err := h.builds.Get(c.Request.Context(), appID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpapi.Fail("Failed to get APK status: "+err.Error()))
		return
	}
	if status.APKURL == nil {
		status.APKURL = app.APKURL
	}

	c.JSON(http.StatusOK, httpapi.OK("APK status retrieved.", status))
}
