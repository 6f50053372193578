package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/services"
)

const viewerTimezoneParam = "viewerTimezone"

func CreateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request payload")
			return
		}

		event, err := e.CreateEvent(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

// ListEventsForProfile serves GET /api/events/:profileId. An optional
// ?viewerTimezone= adds a display block per event.
func ListEventsForProfile(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := strings.TrimSpace(c.Param("profileId"))
		viewer := strings.TrimSpace(c.Query(viewerTimezoneParam))

		events, err := e.ListEventsForProfile(c.Request.Context(), profileID, viewer)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func UpdateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))

		var req models.EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request payload")
			return
		}

		event, err := e.UpdateEvent(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func ExportCalendar(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := strings.TrimSpace(c.Param("profileId"))
		viewer := strings.TrimSpace(c.Query(viewerTimezoneParam))

		feed, err := e.CalendarFeed(c.Request.Context(), profileID, viewer)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="events.ics"`)
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
	}
}
