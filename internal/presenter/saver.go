package presenter

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SaveDenseToCSV writes a matrix as CSV, one matrix row per line.
func SaveDenseToCSV(m mat.Matrix, filename string) (err error) {
	// Create the CSV file
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, filename)
		}
	}()

	writer := csv.NewWriter(file)
	rows, cols := m.Dims()

	// Write each row to the CSV file
	for i := 0; i < rows; i++ {
		record := make([]string, cols)
		for j := 0; j < cols; j++ {
			record[j] = formatFloat(m.At(i, j))
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, filename)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), filename)
}

// WriteFigureCSV writes the data of a figure in long form: series, x, y.
// Grid figures are written as x, y, z triples.
func WriteFigureCSV(w io.Writer, f *figure.Figure) error {
	writer := csv.NewWriter(w)

	if f.Grid != nil {
		if err := writer.Write([]string{"x", "y", "z"}); err != nil {
			return err
		}
		c, r := f.Grid.Dims()
		for j := 0; j < r; j++ {
			for i := 0; i < c; i++ {
				rec := []string{formatFloat(f.Grid.X(i)), formatFloat(f.Grid.Y(j)), formatFloat(f.Grid.Z(i, j))}
				if err := writer.Write(rec); err != nil {
					return err
				}
			}
		}
		writer.Flush()
		return writer.Error()
	}

	if err := writer.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}
	write := func(series string, x, y float64) error {
		return writer.Write([]string{series, formatFloat(x), formatFloat(y)})
	}
	for i, s := range f.Lines {
		name := label(s.Label, "line", i)
		for k := range s.Xs {
			if err := write(name, s.Xs[k], s.Ys[k]); err != nil {
				return err
			}
		}
	}
	for i, b := range f.Bars {
		name := label(b.Label, "bars", i)
		for k, v := range b.Values {
			x := b.XMin + float64(k)
			if err := write(category(f.NominalX, k, name), x, v); err != nil {
				return err
			}
		}
	}
	for i, s := range f.Scatters {
		name := label(s.Label, "points", i)
		for k := range s.Xs {
			if err := write(name, s.Xs[k], s.Ys[k]); err != nil {
				return err
			}
		}
	}
	for i, h := range f.Hists {
		name := label(h.Label, "sample", i)
		for k, v := range h.Values {
			if err := write(name, float64(k), v); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func label(l, kind string, i int) string {
	if l != "" {
		return l
	}
	return kind + strconv.Itoa(i+1)
}

func category(names []string, k int, fallback string) string {
	if k < len(names) {
		return names[k]
	}
	return fallback
}
