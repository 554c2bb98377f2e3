package query

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Kind identifies which filter a tag carries.
type Kind string

const (
	KindDate      Kind = "date"
	KindSize      Kind = "size"
	KindFrom      Kind = "from"
	KindChat      Kind = "chat"
	KindExtension Kind = "extension"
)

// DateType names the supported date filter variants.
type DateType string

const (
	DateToday     DateType = "today"
	DateYesterday DateType = "yesterday"
	DateWeek      DateType = "week"
	DateMonth     DateType = "month"
	DateExact     DateType = "exact"
)

// DateValue is the payload of a date tag. Date is only set for exact dates
// and holds the ISO form (YYYY-MM-DD) regardless of how the token was typed.
type DateValue struct {
	Type DateType `msgpack:"type" json:"type"`
	Date string   `msgpack:"date,omitempty" json:"date,omitempty"`
}

// SizeValue is the payload of a size tag, in bytes. Exactly one field is set:
// Min for ">", Max for "<", Approx when no operator was given.
type SizeValue struct {
	Min    int64 `msgpack:"min,omitempty" json:"min,omitempty"`
	Max    int64 `msgpack:"max,omitempty" json:"max,omitempty"`
	Approx int64 `msgpack:"approx,omitempty" json:"approx,omitempty"`
}

// Tag is a structured filter recognized in one token of search input.
// Tags are immutable once created; removing one from a query means dropping
// the value, never mutating it. Raw keeps the original token so the UI can
// restore it into the search box on removal.
type Tag struct {
	ID    string `msgpack:"id" json:"id"`
	Kind  Kind   `msgpack:"kind" json:"kind"`
	Label string `msgpack:"label" json:"label"`
	Raw   string `msgpack:"raw" json:"raw"`

	// Kind-specific payload: Date for date tags, Size for size tags,
	// Value for from/chat (the name verbatim) and extension (the MIME type).
	Date  *DateValue `msgpack:"date_value,omitempty" json:"dateValue,omitempty"`
	Size  *SizeValue `msgpack:"size_value,omitempty" json:"sizeValue,omitempty"`
	Value string     `msgpack:"value,omitempty" json:"value,omitempty"`
}

var tagSeq atomic.Uint64

// newTagID returns an identifier unique within one process lifetime, which is
// all the UI needs to key tag chips across re-renders.
func newTagID() string {
	return fmt.Sprintf("%d-%d", tagSeq.Add(1), time.Now().UnixMilli())
}
