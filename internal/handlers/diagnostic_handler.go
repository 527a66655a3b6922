package handlers

import (
	"context"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/kabarettimpro/theater-api/internal/logger"
)

const maxDiagnosticCollections = 10

// CollectionLister lists collection names for the diagnostic probe
type CollectionLister interface {
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// DiagnosticHandler serves GET /test. The endpoint is a human-readable health
// probe, not a machine contract: it always answers 200 and encodes every
// degraded state as a descriptive string inside the payload.
type DiagnosticHandler struct {
	store CollectionLister
	log   *log.Logger
}

// NewDiagnosticHandler creates a diagnostic handler; store may be nil when the
// store handle was never established.
func NewDiagnosticHandler(store CollectionLister) *DiagnosticHandler {
	return &DiagnosticHandler{
		store: store,
		log:   logger.Handler("diagnostic"),
	}
}

// statusReport mirrors the fixed diagnostic payload keys
type statusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Status handles GET /test
func (h *DiagnosticHandler) Status(c *gin.Context) {
	report := statusReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil {
		report.Database = "✅ Available"
		report.DatabaseURL = envFlag("DATABASE_URL")
		report.DatabaseName = envFlag("DATABASE_NAME")
		report.ConnectionStatus = "Connected"

		names, err := h.store.ListCollectionNames(c.Request.Context())
		if err != nil {
			h.log.Warn("Collection listing failed during diagnostics", "error", err)
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxDiagnosticCollections {
				names = names[:maxDiagnosticCollections]
			}
			if names == nil {
				names = []string{}
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, report)
}

func envFlag(key string) *string {
	flag := "❌ Not Set"
	if os.Getenv(key) != "" {
		flag = "✅ Set"
	}
	return &flag
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
