package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tzsched/internal/timeconv"
)

type TimezoneOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TimezoneOptions are the zones offered to users when picking an event or
// viewing timezone.
var TimezoneOptions = []TimezoneOption{
	{Label: "Eastern Time (ET)", Value: "America/New_York"},
	{Label: "Central Time (CT)", Value: "America/Chicago"},
	{Label: "Mountain Time (MT)", Value: "America/Denver"},
	{Label: "Pacific Time (PT)", Value: "America/Los_Angeles"},
	{Label: "India (IST)", Value: "Asia/Kolkata"},
	{Label: "GMT/UTC", Value: "UTC"},
}

func ListTimezones() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, TimezoneOptions)
	}
}

// ToInstant converts form fields entered in a timezone into a UTC instant.
func ToInstant() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Date     string `json:"date"`
			Time     string `json:"time"`
			Timezone string `json:"timezone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request payload")
			return
		}

		instant, err := timeconv.ParseLocal(req.Date, req.Time, req.Timezone)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"instant": timeconv.FormatInstant(instant)})
	}
}

// ToLocal projects an instant into a timezone for date/time inputs and display.
func ToLocal() gin.HandlerFunc {
	return func(c *gin.Context) {
		timezone := strings.TrimSpace(c.Query("timezone"))
		instant, err := timeconv.ParseInstant(c.Query("instant"))
		if err != nil {
			respondError(c, err)
			return
		}

		date, clock, err := timeconv.ToLocal(instant, timezone)
		if err != nil {
			respondError(c, err)
			return
		}
		display, err := timeconv.FormatForDisplay(instant, timezone)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"date":    date.String(),
			"time":    clock.String(),
			"display": display,
		})
	}
}
