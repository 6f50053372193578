package services

import (
	"time"

	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/timeconv"
)

// DisplayEvent projects an event into the viewer's timezone. The original
// block is rendered in the event's own zone and omitted if that zone no
// longer resolves.
func DisplayEvent(e *models.Event, viewerTimezone string) (*models.EventDisplay, error) {
	d := &models.EventDisplay{Timezone: viewerTimezone}

	var err error
	for _, f := range []struct {
		at  time.Time
		out *string
	}{
		{e.StartDateTime, &d.Start},
		{e.EndDateTime, &d.End},
		{e.CreatedAt, &d.Created},
		{e.UpdatedAt, &d.Updated},
	} {
		if *f.out, err = timeconv.FormatForDisplay(f.at, viewerTimezone); err != nil {
			return nil, err
		}
	}

	if d.StartLocal, err = localFields(e.StartDateTime, viewerTimezone); err != nil {
		return nil, err
	}
	if d.EndLocal, err = localFields(e.EndDateTime, viewerTimezone); err != nil {
		return nil, err
	}

	start, errStart := timeconv.FormatForDisplay(e.StartDateTime, e.EventTimezone)
	end, errEnd := timeconv.FormatForDisplay(e.EndDateTime, e.EventTimezone)
	if errStart == nil && errEnd == nil {
		d.Original = &models.OriginalDisplay{Timezone: e.EventTimezone, Start: start, End: end}
	}
	return d, nil
}

func localFields(instant time.Time, timezone string) (models.LocalDateTime, error) {
	date, clock, err := timeconv.ToLocal(instant, timezone)
	if err != nil {
		return models.LocalDateTime{}, err
	}
	return models.LocalDateTime{Date: date.String(), Time: clock.String()}, nil
}
