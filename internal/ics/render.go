// Package ics renders a profile's events as an RFC 5545 calendar feed.
package ics

import (
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/timeconv"
)

const (
	ProductID = "-//tzsched//profile events//EN"
	uidSuffix = "@tzsched"
)

// Render builds a PUBLISH calendar named calName. DTSTART/DTEND are written
// in UTC; descriptions carry the times as seen from viewerTimezone and from
// the event's own zone.
func Render(calName string, events []*models.Event, viewerTimezone string) (string, error) {
	if _, err := timeconv.LoadZone(viewerTimezone); err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName(calName)
	cal.SetXWRTimezone(viewerTimezone)

	for _, e := range events {
		ve := cal.AddEvent(e.ID.Hex() + uidSuffix)
		ve.SetDtStampTime(e.UpdatedAt)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetModifiedAt(e.UpdatedAt)
		ve.SetStartAt(e.StartDateTime)
		ve.SetEndAt(e.EndDateTime)
		ve.SetSummary(summary(e))

		desc, err := description(e, viewerTimezone)
		if err != nil {
			return "", err
		}
		ve.SetDescription(desc)
	}
	return cal.Serialize(), nil
}

func summary(e *models.Event) string {
	names := make([]string, 0, len(e.Profiles))
	for _, ref := range e.Profiles {
		switch r := ref.(type) {
		case models.ResolvedProfile:
			names = append(names, r.Name)
		case models.UnresolvedProfile:
			names = append(names, r.ID.Hex())
		}
	}
	if len(names) == 0 {
		return "Event"
	}
	return "Event: " + strings.Join(names, ", ")
}

func description(e *models.Event, viewerTimezone string) (string, error) {
	start, err := timeconv.FormatForDisplay(e.StartDateTime, viewerTimezone)
	if err != nil {
		return "", err
	}
	end, err := timeconv.FormatForDisplay(e.EndDateTime, viewerTimezone)
	if err != nil {
		return "", err
	}
	lines := []string{fmt.Sprintf("%s - %s", start, end)}
	if e.EventTimezone != viewerTimezone {
		if orig, err := timeconv.FormatForDisplay(e.StartDateTime, e.EventTimezone); err == nil {
			lines = append(lines, fmt.Sprintf("Original timezone %s: starts %s", e.EventTimezone, orig))
		}
	}
	return strings.Join(lines, "\n"), nil
}
