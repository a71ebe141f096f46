// Package experiment holds small statistical simulations. Each experiment
// reads its controls, simulates and renders in a single Run call.
package experiment

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"

	"github.com/peplxx/probability-explorer/internal/ui"
)

// Experiment is one registry entry.
type Experiment interface {
	Name() string
	Description() string
	// Run draws fresh samples from rng on every call.
	Run(s ui.Surface, rng *rand.Rand) error
}

// DefaultName derives a label from the type name, without the "Experiment" suffix.
func DefaultName(e Experiment) string {
	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.TrimSuffix(t.Name(), "Experiment")
}

// notes is the static explanation shown next to an experiment.
type notes struct {
	Title string
	Items []string
	Link  string
	URL   string
}

func (n notes) write(w ui.Writer) {
	var sb strings.Builder
	sb.WriteString(n.Title)
	sb.WriteString(":\n\n")
	for _, it := range n.Items {
		sb.WriteString("- ")
		sb.WriteString(it)
		sb.WriteString("\n")
	}
	w.Markdown(sb.String())
	w.Markdown(fmt.Sprintf("📚 **Learn More:** [%s](%s)", n.Link, n.URL))
}

// frequencies counts values 0..n-1 and divides by the number of observations.
func frequencies(xs []int, n int) []float64 {
	out := make([]float64, n)
	if len(xs) == 0 {
		return out
	}
	for _, x := range xs {
		out[x]++
	}
	for i := range out {
		out[i] /= float64(len(xs))
	}
	return out
}
