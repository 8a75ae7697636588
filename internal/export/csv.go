// Package export converts message sequences into the dashboard's CSV
// download format: fixed Uzbek column set, UTF-8 byte-order marker, and
// minimal quoting.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"telestat/internal/model"
)

// ErrEmptyExport signals that an export was requested with zero rows. It is
// surfaced to users as a notice; Serialize still yields the header row.
var ErrEmptyExport = errors.New("nothing to export")

// bom is the UTF-8 byte-order marker spreadsheet tools use for encoding
// detection.
const bom = "\uFEFF"

// column is one field of the export: its header label and how to read the
// value from a message.
type column struct {
	label string
	value func(*model.Message) string
}

var columns = []column{
	{"ID", func(m *model.Message) string {
		if m.MessageID == 0 {
			return "-"
		}
		return fmt.Sprintf("%d", m.MessageID)
	}},
	{"Foydalanuvchi", func(m *model.Message) string {
		if m.User == nil {
			return "-"
		}
		return m.User.DisplayName()
	}},
	{"Guruh", func(m *model.Message) string {
		if title := m.Group.DisplayTitle(); title != "" {
			return title
		}
		return "-"
	}},
	{"Xabar", func(m *model.Message) string {
		if m.Text == "" {
			return "-"
		}
		return m.Text
	}},
	{"Media", func(m *model.Message) string {
		return m.EffectiveMediaType()
	}},
	{"Kayfiyat", func(m *model.Message) string {
		return m.EffectiveSentiment()
	}},
	{"Sana", func(m *model.Message) string {
		if m.CreatedAt.IsZero() {
			return "-"
		}
		return m.CreatedAt.Format("02.01.2006 15:04")
	}},
	{"Tahrirlangan", func(m *model.Message) string {
		return yesNo(m.IsEdited)
	}},
	{"Ochirilgan", func(m *model.Message) string {
		return yesNo(m.IsDeleted)
	}},
	{"Javob", func(m *model.Message) string {
		if m.ReplyToMessageID == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *m.ReplyToMessageID)
	}},
}

func yesNo(v bool) string {
	if v {
		return "Ha"
	}
	return "Yoq"
}

var (
	lineBreaks = regexp.MustCompile(`[\n\r]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// escapeField applies the export's field transform: trim, collapse line
// breaks and whitespace runs to single spaces, then minimally quote. A field
// is quoted iff it contains a comma or a double quote, with internal quotes
// doubled.
func escapeField(value string) string {
	v := strings.TrimSpace(value)
	v = lineBreaks.ReplaceAllString(v, " ")
	v = whitespace.ReplaceAllString(v, " ")

	if strings.ContainsAny(v, `,"`) {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

// Serialize renders the messages as a CSV document with a leading BOM. An
// empty input yields a header-only document together with ErrEmptyExport so
// callers can show a notice instead of offering an empty file.
func Serialize(messages []model.Message) (string, error) {
	var b strings.Builder
	b.WriteString(bom)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.label
	}
	b.WriteString(strings.Join(headers, ","))

	for i := range messages {
		b.WriteByte('\n')
		fields := make([]string, len(columns))
		for j, col := range columns {
			fields[j] = escapeField(col.value(&messages[i]))
		}
		b.WriteString(strings.Join(fields, ","))
	}

	if len(messages) == 0 {
		return b.String(), ErrEmptyExport
	}
	return b.String(), nil
}

// Filename builds the download name `<base>_<YYYY-MM-DD>.csv`.
func Filename(base string, t time.Time) string {
	return fmt.Sprintf("%s_%s.csv", base, t.Format("2006-01-02"))
}
