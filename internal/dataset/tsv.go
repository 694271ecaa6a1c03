package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultPath is where the generated table is written, relative to the
// working directory. The directory must already exist.
const DefaultPath = "Data/snow_objects.csv"

// Header returns the output column names in serialization order.
func Header() []string {
	return []string{"size", "roughness", "color", "motion", "label"}
}

// Write serializes the table as tab-separated text with a header row.
func (d *Dataset) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, o := range d.Objects {
		row := []string{
			strconv.FormatFloat(o.Size, 'g', -1, 64),
			strconv.FormatFloat(o.Roughness, 'g', -1, 64),
			o.Color,
			strconv.FormatFloat(o.Motion, 'g', -1, 64),
			o.Label,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, overwriting an existing file. The
// parent directory is not created; a missing directory is an error.
func (d *Dataset) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Read parses a tab-separated table previously produced by Write. The
// header must match Header() exactly; malformed rows are an error.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	want := Header()
	if len(header) != len(want) {
		return nil, fmt.Errorf("header has %d columns, want %d", len(header), len(want))
	}
	for i := range want {
		if header[i] != want[i] {
			return nil, fmt.Errorf("header column %d is %q, want %q", i, header[i], want[i])
		}
	}

	d := &Dataset{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		o, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d.Objects = append(d.Objects, o)
	}
	return d, nil
}

// ReadFile reads the table from path.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func parseRow(row []string) (Object, error) {
	var o Object
	var err error
	if o.Size, err = strconv.ParseFloat(row[0], 64); err != nil {
		return o, fmt.Errorf("parse size %q: %w", row[0], err)
	}
	if o.Roughness, err = strconv.ParseFloat(row[1], 64); err != nil {
		return o, fmt.Errorf("parse roughness %q: %w", row[1], err)
	}
	o.Color = row[2]
	if o.Motion, err = strconv.ParseFloat(row[3], 64); err != nil {
		return o, fmt.Errorf("parse motion %q: %w", row[3], err)
	}
	o.Label = row[4]
	return o, nil
}
