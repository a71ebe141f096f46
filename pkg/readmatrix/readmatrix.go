package readmatrix

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ReadMatrix reads a whitespace separated matrix from a file.
func ReadMatrix(filename string) (*mat.Dense, error) {
	// Открываем файл
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	m, err := Read(file)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return m, nil
}

// Read parses a matrix from r. Blank lines and lines starting with '#' are
// skipped; a leading non-numeric line is treated as a header.
func Read(r io.Reader) (*mat.Dense, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	hasHeader := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Пропускаем пустые строки и строки с комментариями
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		// Заголовок возможен только перед первой строкой данных
		if !hasHeader && len(rows) == 0 && !allNumeric(fields) {
			hasHeader = true
			continue
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse float at line %d, column %d", lineNo, i+1)
			}
			row[i] = val
		}

		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading matrix")
	}

	if len(rows) == 0 {
		return nil, errors.New("matrix is empty")
	}

	cols := len(rows[0])
	flatData := make([]float64, 0, len(rows)*cols)

	for _, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("inconsistent number of columns: expected %d, got %d",
				cols, len(row))
		}
		flatData = append(flatData, row...)
	}

	return mat.NewDense(len(rows), cols, flatData), nil
}

func allNumeric(fields []string) bool {
	for _, field := range fields {
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}
	return true
}
