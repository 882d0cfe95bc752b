package pricing

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"mc-option-pricer/internal/model"
)

// PriceDecimals is the number of decimals used when printing prices.
const PriceDecimals = 4

// WritePathCSV writes a single simulated path as step,time,wiener,price.
func WritePathCSV(path string, points []model.PathPoint) error {
	header := []string{"step", "time", "wiener", "price"}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			strconv.Itoa(p.Step),
			fmtFloat(p.Time),
			fmtFloat(p.Wiener),
			fmtFloat(p.Price),
		})
	}
	return WriteCSV(path, header, rows)
}

// WriteCSV writes header and rows to path, creating the parent directory.
func WriteCSV(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

// FormatPrice renders x rounded half away from zero to places decimals.
func FormatPrice(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(places)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
