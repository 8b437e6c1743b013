// Package calendar exports events as an iCalendar (.ics) feed.
package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/models"
	"github.com/emersion/go-ical"
)

const productID = "-//eventhub//EN"

// Encode writes events to w as one VCALENDAR of all-day VEVENTs. Events
// whose date is not YYYY-MM-DD are left out and their ids returned in
// skipped. stamp becomes every DTSTAMP.
func Encode(w io.Writer, events []models.Event, stamp time.Time) (skipped []string, err error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, e := range events {
		ve, ok := toICal(e, stamp)
		if !ok {
			skipped = append(skipped, e.ID)
			continue
		}
		cal.Children = append(cal.Children, ve)
	}

	// A VCALENDAR needs at least one component; go-ical refuses to encode
	// an empty one.
	if len(events) == 0 {
		return nil, fmt.Errorf("nothing to export: no events")
	}
	if len(cal.Children) == 0 {
		return skipped, fmt.Errorf("nothing to export: %d event(s) without a valid date", len(skipped))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return skipped, fmt.Errorf("failed to encode events to iCal format: %w", err)
	}
	return skipped, nil
}

// toICal converts an event into an all-day VEVENT ending the next day.
func toICal(e models.Event, stamp time.Time) (*ical.Component, bool) {
	day, err := time.Parse(common.DateLayout, e.Date)
	if err != nil {
		return nil, false
	}

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, e.ID+"@eventhub")
	ve.Props.SetText(ical.PropSummary, e.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ve.Props.SetDate(ical.PropDateTimeStart, day)
	ve.Props.SetDate(ical.PropDateTimeEnd, day.AddDate(0, 0, 1))

	if e.Description != "" {
		ve.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Location != "" {
		ve.Props.SetText(ical.PropLocation, e.Location)
	}
	if e.ImageURL != "" {
		p := ical.NewProp(ical.PropAttach)
		p.Value = e.ImageURL
		ve.Props.Add(p)
	}
	return ve, true
}
