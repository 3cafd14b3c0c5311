package handlers

import (
	"context"
	"net/http"
	"time"

	"taskmanager/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	StatusUp   = "up"
	StatusDown = "down"

	pingTimeout = 2 * time.Second
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AppInfo is what the health endpoints report about the running process.
type AppInfo struct {
	Name           string
	Version        string
	MaxTaskEntries int
}

type HealthStatus struct {
	AppName           string `json:"appName"`
	AppVersion        string `json:"appVersion"`
	CurrentSystemTime string `json:"currentSystemTime"`
	Status            string `json:"status"`
}

type DependencyStatus struct {
	Database string `json:"database"`
}

type HealthReport struct {
	AppName           string           `json:"appName"`
	AppVersion        string           `json:"appVersion"`
	CurrentSystemTime string           `json:"currentSystemTime"`
	Language          string           `json:"language"`
	MaxTaskEntries    int              `json:"maxTaskEntries"`
	Dependencies      DependencyStatus `json:"dependencies"`
}

type HealthHandler struct {
	db   Pinger
	info AppInfo
	now  func() time.Time
}

func NewHealthHandler(db Pinger, info AppInfo) *HealthHandler {
	if info.Version == "" {
		info.Version = "dev"
	}
	return &HealthHandler{db: db, info: info, now: time.Now}
}

// CheckHealth answers 503 while the database is unreachable.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := h.databaseStatus(c.Request.Context())

	code := http.StatusOK
	if status != StatusUp {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthStatus{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: h.timestamp(),
		Status:            status,
	})
}

// CheckHealthReport always answers 200 and reports each dependency separately.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthReport{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: h.timestamp(),
		Language:          middleware.GetLang(c),
		MaxTaskEntries:    h.info.MaxTaskEntries,
		Dependencies: DependencyStatus{
			Database: h.databaseStatus(c.Request.Context()),
		},
	})
}

func (h *HealthHandler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return StatusDown
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		return StatusDown
	}
	return StatusUp
}

func (h *HealthHandler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}
