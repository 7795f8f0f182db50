// Package export serializes the file cabinet records to CSV or XML.
//
// A Snapshot is a copy of the record set taken at one moment. CSVWriter
// writes one "id, first, last, yyyy-MMM-dd, gender, reviews, salary" line per
// record without a header; values are not quoted. XMLWriter writes a single
// <records> document:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<records>
//	  <record id="1">
//	    <firstName>Anna</firstName>
//	    ...
//	  </record>
//	</records>
//
// Service ties both to a file.Storage backend (local directory or S3):
//
//	svc := export.NewService(store, storage)
//	if !svc.Exists(ctx, "records.csv") {
//	    _, err := svc.Export(ctx, export.FormatCSV, "records.csv")
//	}
package export
