// =============================================================================
// Library Inventory Cleaner - Dataset Types
// =============================================================================
//
// This package defines the in-memory representation of a tabular inventory
// dataset. A Dataset is an ordered sequence of records plus the ordered list
// of column names; records are maps of column name -> raw string value.
//
// The cleaning pipeline mutates a Dataset in place: columns are removed, rows
// are filtered, values are corrected, and derived columns are appended. The
// column order is preserved through all of these operations and drives the
// header order of the output file.
//
// =============================================================================

package dataset

// Record is a single inventory row, keyed by column name.
// Values are the raw strings as parsed from the input file.
type Record map[string]string

// Dataset is an inventory table loaded fully into memory.
type Dataset struct {
	// Columns is the ordered list of column names. Derived columns are
	// appended at the end; dropped columns are removed without reordering
	// the remainder.
	Columns []string

	// Rows contains the data records in input order.
	Rows []Record
}

// New creates an empty Dataset with the given column order.
func New(columns []string) *Dataset {
	return &Dataset{
		Columns: columns,
		Rows:    make([]Record, 0),
	}
}

// HasColumn reports whether the dataset contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.Columns)
}

// DropColumns removes the named columns from the column list and from every
// row. Columns that are not present are ignored.
func (d *Dataset) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	kept := make([]string, 0, len(d.Columns))
	for _, col := range d.Columns {
		if !drop[col] {
			kept = append(kept, col)
		}
	}
	d.Columns = kept

	for _, row := range d.Rows {
		for name := range drop {
			delete(row, name)
		}
	}
}

// Filter removes every row for which keep returns false. Rows are compared
// and retained in their original order. Filtering to zero rows is valid.
func (d *Dataset) Filter(keep func(Record) bool) {
	kept := d.Rows[:0]
	for _, row := range d.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	// Release references to dropped records.
	for i := len(kept); i < len(d.Rows); i++ {
		d.Rows[i] = nil
	}
	d.Rows = kept
}

// ReplaceValue substitutes newValue for every cell in the named column whose
// current value is exactly oldValue. If column is empty, the substitution is
// applied to every column.
func (d *Dataset) ReplaceValue(column, oldValue, newValue string) int {
	replaced := 0

	for _, row := range d.Rows {
		if column != "" {
			if row[column] == oldValue {
				row[column] = newValue
				replaced++
			}
			continue
		}

		for col, value := range row {
			if value == oldValue {
				row[col] = newValue
				replaced++
			}
		}
	}

	return replaced
}

// AddColumn appends a new column whose value for each row is computed by
// derive. An existing column of the same name is overwritten in the rows but
// not duplicated in the column list.
func (d *Dataset) AddColumn(name string, derive func(Record) string) {
	if !d.HasColumn(name) {
		d.Columns = append(d.Columns, name)
	}
	for _, row := range d.Rows {
		row[name] = derive(row)
	}
}

// HeaderRow returns the column names as an output header row.
func (d *Dataset) HeaderRow() []string {
	header := make([]string, len(d.Columns))
	copy(header, d.Columns)
	return header
}

// RecordRow returns the values of row i in column order. Missing cells are
// rendered as empty strings.
func (d *Dataset) RecordRow(i int) []string {
	row := d.Rows[i]
	values := make([]string, len(d.Columns))
	for j, col := range d.Columns {
		values[j] = row[col]
	}
	return values
}
