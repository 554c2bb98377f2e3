/*
Package query turns raw search-box input into structured filters.

Parse splits the input on whitespace and runs every token through an ordered
list of recognizers (date, size, sender, chat, file extension). Tokens that
match become Tags; everything else is re-joined into plain free text for the
backend's substring matching. Params then flattens a tag list into the
query-string parameters the library API understands.

Nothing in this package returns an error: malformed or ambiguous input simply
degrades to free text.
*/
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parsed is the outcome of one Parse call. Text holds the unrecognized
// tokens in original order, joined with single spaces.
type Parsed struct {
	Text string `msgpack:"text" json:"text"`
	Tags []Tag  `msgpack:"tags" json:"tags"`
}

var (
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dottedDateRe = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	sizeRe       = regexp.MustCompile(`^([<>])?(\d+)(kb|mb|gb)$`)
	fromRe       = regexp.MustCompile(`^(?i)(?:от|from):(.+)$`)
	chatRe       = regexp.MustCompile(`^(?i)(?:из|chat):(.+)$`)
	extRe        = regexp.MustCompile(`^\.?([a-zA-Z0-9]{2,5})$`)
)

// recognizers in priority order. Extension runs last: its shape is the most
// permissive and must not steal tokens from the stricter patterns.
var recognizers = []func(string) (Tag, bool){
	recognizeDate,
	recognizeSize,
	recognizeFrom,
	recognizeChat,
	recognizeExtension,
}

// Parse extracts filter tags from a raw search string. Each whitespace
// delimited token is evaluated once, left to right; the first recognizer
// that matches wins. Unmatched tokens become the free-text remainder.
func Parse(input string) Parsed {
	var (
		free []string
		tags []Tag
	)
	for _, tok := range strings.Fields(input) {
		if tag, ok := recognize(tok); ok {
			tags = append(tags, tag)
			continue
		}
		free = append(free, tok)
	}
	return Parsed{Text: strings.Join(free, " "), Tags: tags}
}

func recognize(tok string) (Tag, bool) {
	for _, rec := range recognizers {
		if tag, ok := rec(tok); ok {
			return tag, true
		}
	}
	return Tag{}, false
}

var relativeDates = map[string]struct {
	typ   DateType
	label string
}{
	"сегодня":   {DateToday, "Сегодня"},
	"today":     {DateToday, "Сегодня"},
	"вчера":     {DateYesterday, "Вчера"},
	"yesterday": {DateYesterday, "Вчера"},
	"неделя":    {DateWeek, "Неделя"},
	"week":      {DateWeek, "Неделя"},
	"месяц":     {DateMonth, "Месяц"},
	"month":     {DateMonth, "Месяц"},
}

// recognizeDate matches the relative-date keywords in Russian or English,
// an ISO date, or a DD.MM.YYYY date. Calendar-impossible dates (2024-13-40)
// fall through to free text like any other unrecognized token.
func recognizeDate(tok string) (Tag, bool) {
	if rel, ok := relativeDates[strings.ToLower(tok)]; ok {
		return Tag{
			ID:    newTagID(),
			Kind:  KindDate,
			Label: rel.label,
			Raw:   tok,
			Date:  &DateValue{Type: rel.typ},
		}, true
	}
	if isoDateRe.MatchString(tok) {
		if _, err := time.Parse("2006-01-02", tok); err != nil {
			return Tag{}, false
		}
		return Tag{
			ID:    newTagID(),
			Kind:  KindDate,
			Label: tok,
			Raw:   tok,
			Date:  &DateValue{Type: DateExact, Date: tok},
		}, true
	}
	if m := dottedDateRe.FindStringSubmatch(tok); m != nil {
		iso := fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
		if _, err := time.Parse("2006-01-02", iso); err != nil {
			return Tag{}, false
		}
		return Tag{
			ID:    newTagID(),
			Kind:  KindDate,
			Label: tok,
			Raw:   tok,
			Date:  &DateValue{Type: DateExact, Date: iso},
		}, true
	}
	return Tag{}, false
}

// recognizeSize matches an optional comparison operator, digits and a
// mandatory kb/mb/gb unit. The unit is mandatory on purpose: a bare number
// is far more likely to be a year or a quantity than a byte count.
func recognizeSize(tok string) (Tag, bool) {
	m := sizeRe.FindStringSubmatch(strings.ToLower(tok))
	if m == nil {
		return Tag{}, false
	}
	n, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Tag{}, false
	}
	var mult int64
	switch m[3] {
	case "kb":
		mult = 1 << 10
	case "mb":
		mult = 1 << 20
	default:
		mult = 1 << 30
	}
	bytes := n * mult

	value := &SizeValue{}
	label := FormatSize(bytes)
	switch m[1] {
	case ">":
		value.Min = bytes
		label = ">" + label
	case "<":
		value.Max = bytes
		label = "<" + label
	default:
		value.Approx = bytes
	}
	return Tag{
		ID:    newTagID(),
		Kind:  KindSize,
		Label: label,
		Raw:   tok,
		Size:  value,
	}, true
}

// recognizeFrom matches от:<name> / from:<name>. The name is kept verbatim,
// including case and any punctuation after the colon.
func recognizeFrom(tok string) (Tag, bool) {
	m := fromRe.FindStringSubmatch(tok)
	if m == nil {
		return Tag{}, false
	}
	return Tag{
		ID:    newTagID(),
		Kind:  KindFrom,
		Label: "От: " + m[1],
		Raw:   tok,
		Value: m[1],
	}, true
}

// recognizeChat matches из:<name> / chat:<name>.
func recognizeChat(tok string) (Tag, bool) {
	m := chatRe.FindStringSubmatch(tok)
	if m == nil {
		return Tag{}, false
	}
	return Tag{
		ID:    newTagID(),
		Kind:  KindChat,
		Label: "Из: " + m[1],
		Raw:   tok,
		Value: m[1],
	}, true
}

// recognizeExtension matches an optional dot plus 2-5 alphanumerics, but only
// turns into a tag when the extension resolves in the MIME table.
func recognizeExtension(tok string) (Tag, bool) {
	m := extRe.FindStringSubmatch(tok)
	if m == nil {
		return Tag{}, false
	}
	ext := strings.ToLower(m[1])
	mime, ok := mimeByExt[ext]
	if !ok {
		return Tag{}, false
	}
	return Tag{
		ID:    newTagID(),
		Kind:  KindExtension,
		Label: "." + strings.ToUpper(ext),
		Raw:   tok,
		Value: mime,
	}, true
}
