package loading

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

func init() {
	Register(&ParquetFormat{})
}

// ParquetFormat handles parquet capture files. The benchmark harness can
// log frame timings to parquet; the schema field order maps to the
// positional columns of the CSV layout and is emitted as the header row.
type ParquetFormat struct{}

func (f *ParquetFormat) Name() string         { return "parquet" }
func (f *ParquetFormat) Extensions() []string { return []string{".parquet"} }
func (f *ParquetFormat) Reader() Reader       { return &ParquetReader{} }

// ParquetReader reads parquet capture files.
type ParquetReader struct {
	file  *os.File
	pfile *parquet.File
}

func (r *ParquetReader) Open(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	r.file = file

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to open parquet file: %w", err)
	}
	r.pfile = pf

	return nil
}

func (r *ParquetReader) Read() ([][]string, error) {
	if r.pfile == nil {
		return nil, fmt.Errorf("reader not initialized")
	}

	schema := r.pfile.Schema()
	fields := schema.Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name()
	}

	rows := make([][]string, 0, r.pfile.NumRows()+1)
	rows = append(rows, header)
	rowBuf := make([]parquet.Row, 100)

	for _, rg := range r.pfile.RowGroups() {
		rgRows := rg.Rows()

		for {
			n, err := rgRows.ReadRows(rowBuf)
			if n == 0 {
				break
			}

			for i := 0; i < n; i++ {
				cells := make([]string, len(fields))
				for j, val := range rowBuf[i] {
					if j >= len(fields) || val.IsNull() {
						continue
					}
					cells[j] = parquetValueToString(val)
				}
				rows = append(rows, cells)
			}

			if err != nil {
				if err != io.EOF {
					rgRows.Close()
					return nil, fmt.Errorf("failed to read rows: %w", err)
				}
				break
			}
		}
		rgRows.Close()
	}

	return rows, nil
}

func parquetValueToString(v parquet.Value) string {
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}

func (r *ParquetReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
