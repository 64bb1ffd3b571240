package pipeline

import (
	"github.com/matzehuels/gridpark/pkg/layout"
)

// Evaluation is the full report for a single layout, shared by the
// evaluate command, the browser and the HTTP service.
type Evaluation struct {
	FlatCode     string        `json:"flat_code"`
	Pretty       string        `json:"pretty"`
	Rows         int           `json:"rows"`
	Cols         int           `json:"cols"`
	Totals       layout.Totals `json:"totals"`
	NetCO2Yearly int           `json:"net_co2_yearly"`
	Scores       layout.Scores `json:"scores"`
}

// Evaluate parses a flat code and scores the layout it describes.
func Evaluate(code string) (*Evaluation, error) {
	l, err := layout.ParseFlat(code)
	if err != nil {
		return nil, err
	}
	return EvaluateLayout(l), nil
}

// EvaluateLayout scores an already built layout.
func EvaluateLayout(l *layout.Layout) *Evaluation {
	return &Evaluation{
		FlatCode:     l.FlatCode(),
		Pretty:       l.Pretty(),
		Rows:         l.Rows(),
		Cols:         l.Cols(),
		Totals:       l.Totals(),
		NetCO2Yearly: l.Totals().NetCO2Yearly(),
		Scores:       layout.Evaluate(l),
	}
}
