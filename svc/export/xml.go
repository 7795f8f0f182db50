package export

import (
	"encoding/xml"
	"io"

	"github.com/dmitrymomot/filecabinet/svc/cabinet"
)

type xmlDocument struct {
	XMLName xml.Name    `xml:"records"`
	Records []xmlRecord `xml:"record"`
}

type xmlRecord struct {
	ID              int    `xml:"id,attr"`
	FirstName       string `xml:"firstName"`
	LastName        string `xml:"lastName"`
	DateOfBirth     string `xml:"dateOfBirth"`
	Gender          string `xml:"gender"`
	NumberOfReviews int16  `xml:"numberOfReviews"`
	Salary          string `xml:"salary"`
}

// XMLWriter writes a <records> document with one <record id="N"> element
// per record, indented by two spaces.
type XMLWriter struct {
	w io.Writer
}

func NewXMLWriter(w io.Writer) *XMLWriter {
	return &XMLWriter{w: w}
}

func (xw *XMLWriter) Write(records []cabinet.Record) error {
	doc := xmlDocument{Records: make([]xmlRecord, 0, len(records))}
	for _, rec := range records {
		doc.Records = append(doc.Records, xmlRecord{
			ID:              rec.ID,
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			DateOfBirth:     rec.DateOfBirth.Format(cabinet.DateLayout),
			Gender:          rec.Gender.String(),
			NumberOfReviews: rec.NumberOfReviews,
			Salary:          rec.Salary.StringFixed(2),
		})
	}

	if _, err := io.WriteString(xw.w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(xw.w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(xw.w, "\n")
	return err
}
