package query

import (
	"strconv"
	"time"
)

// QueryParams converts a tag list into the flat parameter map the backend
// search endpoint accepts. Date tags resolve relative to the moment of the
// call, not the moment the tag was created, so a "today" chip kept around
// past midnight still means the current day.
func QueryParams(tags []Tag) map[string]string {
	return Params(tags, time.Now())
}

// Params is QueryParams with an explicit clock. Later tags of a kind
// overwrite earlier ones; tags with missing payloads are skipped.
func Params(tags []Tag, now time.Time) map[string]string {
	params := make(map[string]string)
	for _, tag := range tags {
		switch tag.Kind {
		case KindDate:
			if tag.Date == nil {
				continue
			}
			from, to, ok := dateBounds(tag.Date, now)
			if !ok {
				continue
			}
			params["dateFrom"] = from.Format(time.RFC3339)
			params["dateTo"] = to.Format(time.RFC3339)
		case KindSize:
			if tag.Size == nil {
				continue
			}
			switch {
			case tag.Size.Min > 0:
				params["sizeMin"] = strconv.FormatInt(tag.Size.Min, 10)
			case tag.Size.Max > 0:
				params["sizeMax"] = strconv.FormatInt(tag.Size.Max, 10)
			case tag.Size.Approx > 0:
				// ±50% band around the approximate value.
				approx := tag.Size.Approx
				params["sizeMin"] = strconv.FormatInt(approx/2, 10)
				params["sizeMax"] = strconv.FormatInt(approx+approx/2, 10)
			}
		case KindFrom:
			params["from"] = tag.Value
		case KindChat:
			params["chat"] = tag.Value
		case KindExtension:
			params["mimeType"] = tag.Value
		}
	}
	return params
}

// dateBounds resolves a date payload into a half-open [from, to) interval
// anchored at now. Unknown types report !ok and are skipped by the caller.
func dateBounds(v *DateValue, now time.Time) (from, to time.Time, ok bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch v.Type {
	case DateToday:
		return day, now, true
	case DateYesterday:
		return day.AddDate(0, 0, -1), day, true
	case DateWeek:
		return now.AddDate(0, 0, -7), now, true
	case DateMonth:
		return now.AddDate(0, 0, -30), now, true
	case DateExact:
		d, err := time.ParseInLocation("2006-01-02", v.Date, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		return d, d.AddDate(0, 0, 1), true
	}
	return time.Time{}, time.Time{}, false
}
