package tui

import (
	"math"

	"charm.land/bubbles/v2/progress"

	"github.com/arjndr/catena/internal/irt"
)

// precisionBar shows how close the attempt is to the convergence
// threshold. Progress is accumulated Fisher information relative to the
// information a converged estimate needs.
type precisionBar struct {
	bar progress.Model
}

func newPrecisionBar(width int) precisionBar {
	b := progress.New(progress.WithDefaultBlend(), progress.WithWidth(width), progress.WithoutPercentage())
	return precisionBar{bar: b}
}

// View renders the bar for the given standard error. An infinite SE
// renders empty.
func (p precisionBar) View(se, threshold float64) string {
	return p.bar.ViewAs(precisionPct(se, threshold))
}

// precisionPct maps a standard error to bar progress in [0,1].
func precisionPct(se, threshold float64) float64 {
	if math.IsInf(se, 1) || se <= 0 {
		return 0
	}
	// information = 1/SE², target = 1/threshold²
	pct := (threshold * threshold) / (se * se)
	if pct > 1 {
		pct = 1
	}
	return pct
}

// defaultThreshold keeps the bar meaningful when the estimator uses the
// stock convergence criterion.
var defaultThreshold = irt.DefaultSEThreshold
