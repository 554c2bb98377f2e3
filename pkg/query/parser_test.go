package query

import (
	"strings"
	"testing"
)

// Tokens that match no recognizer must survive parsing untouched.
func TestParseFreeTextPassthrough(t *testing.T) {
	inputs := []string{
		"отпуск",
		"vacation",
		"42",       // bare number, unit is mandatory for size
		"xyz",      // extension shape but not in the MIME table
		"2024",     // year, not a size
		"от",       // no colon, not a sender filter
		"report_v2",
	}
	for _, in := range inputs {
		got := Parse(in)
		if len(got.Tags) != 0 {
			t.Errorf("Parse(%q) produced tags %v, want none", in, got.Tags)
		}
		if got.Text != in {
			t.Errorf("Parse(%q).Text = %q, want %q", in, got.Text, in)
		}
	}
}

func TestParseWhitespaceCollapse(t *testing.T) {
	got := Parse("  годовой   отчет\t финансы  ")
	if got.Text != "годовой отчет финансы" {
		t.Errorf("Text = %q, want %q", got.Text, "годовой отчет финансы")
	}
	if len(got.Tags) != 0 {
		t.Errorf("unexpected tags: %v", got.Tags)
	}
}

func TestParseSizeTokens(t *testing.T) {
	cases := []struct {
		token string
		min   int64
		max   int64
		approx int64
		label string
	}{
		{">5mb", 5 * 1 << 20, 0, 0, ">5MB"},
		{">5MB", 5 * 1 << 20, 0, 0, ">5MB"},
		{"<100kb", 0, 100 * 1 << 10, 0, "<100KB"},
		{"<2GB", 0, 2 * 1 << 30, 0, "<2GB"},
		{"700kb", 0, 0, 700 * 1 << 10, "700KB"},
		{">1gb", 1 << 30, 0, 0, ">1GB"},
	}
	for _, tc := range cases {
		got := Parse(tc.token)
		if len(got.Tags) != 1 {
			t.Fatalf("Parse(%q): got %d tags, want 1", tc.token, len(got.Tags))
		}
		tag := got.Tags[0]
		if tag.Kind != KindSize || tag.Size == nil {
			t.Fatalf("Parse(%q): got kind %q, want size tag", tc.token, tag.Kind)
		}
		if tag.Size.Min != tc.min || tag.Size.Max != tc.max || tag.Size.Approx != tc.approx {
			t.Errorf("Parse(%q): value = %+v, want min=%d max=%d approx=%d",
				tc.token, *tag.Size, tc.min, tc.max, tc.approx)
		}
		if tag.Label != tc.label {
			t.Errorf("Parse(%q): label = %q, want %q", tc.token, tag.Label, tc.label)
		}
		if tag.Raw != tc.token {
			t.Errorf("Parse(%q): raw = %q, want original token", tc.token, tag.Raw)
		}
		if got.Text != "" {
			t.Errorf("Parse(%q): leftover text %q", tc.token, got.Text)
		}
	}
}

func TestParseDateKeywords(t *testing.T) {
	cases := []struct {
		token string
		typ   DateType
		label string
	}{
		{"сегодня", DateToday, "Сегодня"},
		{"today", DateToday, "Сегодня"},
		{"Today", DateToday, "Сегодня"},
		{"вчера", DateYesterday, "Вчера"},
		{"YESTERDAY", DateYesterday, "Вчера"},
		{"неделя", DateWeek, "Неделя"},
		{"week", DateWeek, "Неделя"},
		{"месяц", DateMonth, "Месяц"},
		{"month", DateMonth, "Месяц"},
	}
	for _, tc := range cases {
		got := Parse(tc.token)
		if len(got.Tags) != 1 || got.Tags[0].Kind != KindDate {
			t.Fatalf("Parse(%q): want one date tag, got %+v", tc.token, got)
		}
		tag := got.Tags[0]
		if tag.Date == nil || tag.Date.Type != tc.typ {
			t.Errorf("Parse(%q): date value = %+v, want type %q", tc.token, tag.Date, tc.typ)
		}
		if tag.Label != tc.label {
			t.Errorf("Parse(%q): label = %q, want %q", tc.token, tag.Label, tc.label)
		}
	}
}

func TestParseExactDates(t *testing.T) {
	cases := []struct {
		token string
		iso   string
	}{
		{"2024-03-08", "2024-03-08"},
		{"08.03.2024", "2024-03-08"},
		{"31.12.2023", "2023-12-31"},
	}
	for _, tc := range cases {
		got := Parse(tc.token)
		if len(got.Tags) != 1 || got.Tags[0].Kind != KindDate {
			t.Fatalf("Parse(%q): want one date tag, got %+v", tc.token, got)
		}
		tag := got.Tags[0]
		if tag.Date == nil || tag.Date.Type != DateExact || tag.Date.Date != tc.iso {
			t.Errorf("Parse(%q): date value = %+v, want exact %q", tc.token, tag.Date, tc.iso)
		}
		if tag.Label != tc.token {
			t.Errorf("Parse(%q): label = %q, want the literal token", tc.token, tag.Label)
		}
	}
}

// Calendar-impossible dates degrade to free text instead of producing a
// broken tag.
func TestParseInvalidDateFallsThrough(t *testing.T) {
	for _, in := range []string{"2024-13-40", "99.99.2024"} {
		got := Parse(in)
		if len(got.Tags) != 0 || got.Text != in {
			t.Errorf("Parse(%q) = %+v, want plain free text", in, got)
		}
	}
}

func TestParseFromAndChat(t *testing.T) {
	cases := []struct {
		token string
		kind  Kind
		value string
		label string
	}{
		{"от:Иван", KindFrom, "Иван", "От: Иван"},
		{"from:Bob", KindFrom, "Bob", "От: Bob"},
		{"FROM:Alice", KindFrom, "Alice", "От: Alice"},
		{"ОТ:Мария", KindFrom, "Мария", "От: Мария"},
		{"из:Работа", KindChat, "Работа", "Из: Работа"},
		{"chat:family", KindChat, "family", "Из: family"},
		{"from:иван@tg", KindFrom, "иван@tg", "От: иван@tg"},
	}
	for _, tc := range cases {
		got := Parse(tc.token)
		if len(got.Tags) != 1 {
			t.Fatalf("Parse(%q): got %d tags, want 1", tc.token, len(got.Tags))
		}
		tag := got.Tags[0]
		if tag.Kind != tc.kind {
			t.Errorf("Parse(%q): kind = %q, want %q", tc.token, tag.Kind, tc.kind)
		}
		if tag.Value != tc.value {
			t.Errorf("Parse(%q): value = %q, want verbatim %q", tc.token, tag.Value, tc.value)
		}
		if tag.Label != tc.label {
			t.Errorf("Parse(%q): label = %q, want %q", tc.token, tag.Label, tc.label)
		}
	}
}

// A sender filter with nothing after the colon is not a tag.
func TestParseEmptyFilterRest(t *testing.T) {
	for _, in := range []string{"от:", "from:", "из:", "chat:"} {
		got := Parse(in)
		if len(got.Tags) != 0 || got.Text != in {
			t.Errorf("Parse(%q) = %+v, want plain free text", in, got)
		}
	}
}

func TestParseExtensions(t *testing.T) {
	cases := []struct {
		token string
		mime  string
		label string
	}{
		{"pdf", "application/pdf", ".PDF"},
		{".pdf", "application/pdf", ".PDF"},
		{"JPG", "image/jpeg", ".JPG"},
		{".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".DOCX"},
		{"mp4", "video/mp4", ".MP4"},
	}
	for _, tc := range cases {
		got := Parse(tc.token)
		if len(got.Tags) != 1 || got.Tags[0].Kind != KindExtension {
			t.Fatalf("Parse(%q): want one extension tag, got %+v", tc.token, got)
		}
		tag := got.Tags[0]
		if tag.Value != tc.mime {
			t.Errorf("Parse(%q): value = %q, want %q", tc.token, tag.Value, tc.mime)
		}
		if tag.Label != tc.label {
			t.Errorf("Parse(%q): label = %q, want %q", tc.token, tag.Label, tc.label)
		}
	}
}

// End-to-end scenario from the search box: free text plus two filters.
func TestParseMixedQuery(t *testing.T) {
	got := Parse("отпуск от:Иван >5MB")
	if got.Text != "отпуск" {
		t.Errorf("Text = %q, want %q", got.Text, "отпуск")
	}
	if len(got.Tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(got.Tags))
	}
	if got.Tags[0].Kind != KindFrom || got.Tags[0].Value != "Иван" {
		t.Errorf("first tag = %+v, want from:Иван", got.Tags[0])
	}
	if got.Tags[1].Kind != KindSize || got.Tags[1].Size == nil || got.Tags[1].Size.Min != 5*1<<20 {
		t.Errorf("second tag = %+v, want size min 5MB", got.Tags[1])
	}
}

// Tokens keep their position: unmatched ones stay in original order.
func TestParsePreservesFreeTextOrder(t *testing.T) {
	got := Parse("годовой pdf отчет сегодня 2023")
	if got.Text != "годовой отчет 2023" {
		t.Errorf("Text = %q, want %q", got.Text, "годовой отчет 2023")
	}
	if len(got.Tags) != 2 {
		t.Fatalf("got %d tags, want 2 (pdf + сегодня)", len(got.Tags))
	}
}

func TestTagIDsUnique(t *testing.T) {
	got := Parse("pdf jpg mp3 сегодня >1mb от:a из:b")
	seen := make(map[string]bool)
	for _, tag := range got.Tags {
		if tag.ID == "" {
			t.Fatalf("tag %+v has empty ID", tag)
		}
		if seen[tag.ID] {
			t.Errorf("duplicate tag ID %q", tag.ID)
		}
		seen[tag.ID] = true
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{512, "512B"},
		{1 << 10, "1KB"},
		{5 * 1 << 20, "5MB"},
		{3 * 1 << 30, "3GB"},
		{1536 * 1 << 10, "2MB"}, // 1.5MB rounds up to the nearest whole unit
		{100 * 1 << 10, "100KB"},
	}
	for _, tc := range cases {
		if got := FormatSize(tc.bytes); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestMIMEForExtension(t *testing.T) {
	if mime, ok := MIMEForExtension("png"); !ok || mime != "image/png" {
		t.Errorf("MIMEForExtension(png) = %q, %v", mime, ok)
	}
	if _, ok := MIMEForExtension("xyz"); ok {
		t.Error("MIMEForExtension(xyz) should not resolve")
	}
	for ext := range mimeByExt {
		if ext != strings.ToLower(ext) {
			t.Errorf("table key %q must be lowercase", ext)
		}
		if len(ext) < 2 || len(ext) > 5 {
			t.Errorf("table key %q outside the recognizer's 2-5 char shape", ext)
		}
	}
}
