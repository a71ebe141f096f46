package presenter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peplxx/probability-explorer/internal/figure"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// FileName turns a title into a file name stem: "Chi-squared Distribution" -> "chi-squared_distribution".
func FileName(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	var sb strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case r == ' ' || r == '_':
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "figure"
	}
	return sb.String()
}

// SaveFigure writes the figure image and its CSV data into dir as name.<format> and name.csv.
// It returns the paths written.
func SaveFigure(f *figure.Figure, dir, name string, width, height vg.Length, format string) (paths []string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "output dir")
	}

	imgPath := filepath.Join(dir, name+"."+format)
	img, err := os.Create(imgPath)
	if err != nil {
		return nil, errors.Wrap(err, "create plot file")
	}
	if err := f.Render(img, width, height, format); err != nil {
		img.Close()
		// недописанный файл не оставляем
		os.Remove(imgPath)
		return nil, err
	}
	if err := img.Close(); err != nil {
		return nil, errors.Wrap(err, imgPath)
	}

	csvPath := filepath.Join(dir, name+".csv")
	out, err := os.Create(csvPath)
	if err != nil {
		return nil, errors.Wrap(err, "create csv")
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			paths, err = nil, errors.Wrap(cerr, csvPath)
		}
	}()
	if err := WriteFigureCSV(out, f); err != nil {
		return nil, errors.Wrap(err, csvPath)
	}
	return []string{imgPath, csvPath}, nil
}
