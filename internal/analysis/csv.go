package analysis

import (
	"strconv"

	"mc-option-pricer/internal/pricing"
)

func WriteComparisonCSV(path string, cs []Comparison) error {
	header := []string{
		"strategy",
		"option_type",
		"paths",
		"steps",
		"seed",
		"price",
		"std_err",
		"elapsed_ms",
		"speedup",
		"price_diff",
	}
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			c.Strategy,
			c.Type.String(),
			strconv.Itoa(c.Paths),
			strconv.Itoa(c.Steps),
			strconv.FormatInt(c.Seed, 10),
			pricing.FormatPrice(c.Price, pricing.PriceDecimals),
			pricing.FormatPrice(c.StdErr, pricing.PriceDecimals),
			fmtMillis(c.Elapsed.Seconds() * 1000),
			strconv.FormatFloat(c.Speedup, 'f', 2, 64),
			strconv.FormatFloat(c.PriceDiff, 'g', 6, 64),
		})
	}
	return pricing.WriteCSV(path, header, rows)
}

func WriteConvergenceCSV(path string, pts []ConvergencePoint) error {
	header := []string{"paths", "price", "std_err", "analytic", "abs_error", "elapsed_ms"}
	rows := make([][]string, 0, len(pts))
	for _, p := range pts {
		rows = append(rows, []string{
			strconv.Itoa(p.Paths),
			pricing.FormatPrice(p.Price, pricing.PriceDecimals),
			pricing.FormatPrice(p.StdErr, pricing.PriceDecimals),
			pricing.FormatPrice(p.Analytic, pricing.PriceDecimals),
			pricing.FormatPrice(p.AbsError, pricing.PriceDecimals),
			fmtMillis(p.Elapsed.Seconds() * 1000),
		})
	}
	return pricing.WriteCSV(path, header, rows)
}

func fmtMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 3, 64)
}
