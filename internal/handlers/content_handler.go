package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/kabarettimpro/theater-api/internal/domain/content"
	"github.com/kabarettimpro/theater-api/internal/logger"
	"github.com/kabarettimpro/theater-api/internal/response"
	"github.com/kabarettimpro/theater-api/internal/storage/mongodb"
)

const msgDatabaseUnavailable = "Database not available"

// ContentHandler serves the venue content read endpoints. Repositories may be
// nil when the store handle was never established; every endpoint then reports
// the database as unavailable.
type ContentHandler struct {
	infos  mongodb.InfoRepository
	owners mongodb.OwnerRepository
	events mongodb.EventRepository
	log    *log.Logger
}

func NewContentHandler(infos mongodb.InfoRepository, owners mongodb.OwnerRepository, events mongodb.EventRepository) *ContentHandler {
	return &ContentHandler{
		infos:  infos,
		owners: owners,
		events: events,
		log:    logger.Handler("content"),
	}
}

// GetInfo handles GET /api/info
func (h *ContentHandler) GetInfo(c *gin.Context) {
	if h.infos == nil {
		response.InternalServerError(c, msgDatabaseUnavailable)
		return
	}

	info, err := h.infos.Latest(c.Request.Context())
	if errors.Is(err, mongodb.ErrNotFound) {
		response.NotFoundError(c, "Info not found")
		return
	}
	if err != nil {
		h.log.Error("Failed to retrieve info", "error", err)
		response.InternalServerError(c, "Failed to retrieve info")
		return
	}

	c.JSON(http.StatusOK, info.Out())
}

// GetOwners handles GET /api/owners
func (h *ContentHandler) GetOwners(c *gin.Context) {
	if h.owners == nil {
		response.InternalServerError(c, msgDatabaseUnavailable)
		return
	}

	owners, err := h.owners.All(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to retrieve owners", "error", err)
		response.InternalServerError(c, "Failed to retrieve owners")
		return
	}

	outs := make([]*content.OwnerOut, 0, len(owners))
	for _, owner := range owners {
		outs = append(outs, owner.Out())
	}

	c.JSON(http.StatusOK, outs)
}

// GetEvents handles GET /api/events
func (h *ContentHandler) GetEvents(c *gin.Context) {
	if h.events == nil {
		response.InternalServerError(c, msgDatabaseUnavailable)
		return
	}

	events, err := h.events.AllByDate(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to retrieve events", "error", err)
		response.InternalServerError(c, "Failed to retrieve events")
		return
	}

	outs := make([]*content.EventOut, 0, len(events))
	for _, event := range events {
		outs = append(outs, event.Out())
	}

	c.JSON(http.StatusOK, outs)
}
