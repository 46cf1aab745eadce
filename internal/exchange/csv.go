package exchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
)

// ParseCSV reads the flat schema from CSV data and assembles it into
// per-project imports. The first record must be the header.
func ParseCSV(r io.Reader) ([]ProjectImport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, serrors.With(serrors.ErrBadRequest, "empty file")
		}

		return nil, fmt.Errorf("could not read header: %w", err)
	}
	cols, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "malformed CSV")
		}
		rows = append(rows, row{cols: cols, record: record})
	}

	// data rows start at line 2, after the header
	return assemble(rows, 2)
}

// WriteCSV renders hydrated projects into the flat schema.
func WriteCSV(w io.Writer, projects []domain.Project) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, record := range Flatten(projects) {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write record: %w", err)
		}
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}

// WriteTemplate writes the flat schema header row, for users preparing a bulk
// import.
func WriteTemplate(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}
