package export

import (
	"io"
	"strings"

	"github.com/dmitrymomot/filecabinet/svc/cabinet"
)

const csvSeparator = ", "

// CSVWriter writes records as comma-space separated lines without a header.
// Values are not quoted, so a value containing ", " shifts the columns of
// its row.
type CSVWriter struct {
	w io.Writer
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// Write emits id, first name, last name, date of birth, gender, reviews and
// salary followed by a newline.
func (cw *CSVWriter) Write(rec cabinet.Record) error {
	_, err := io.WriteString(cw.w, strings.Join(rec.Values(), csvSeparator)+"\n")
	return err
}
