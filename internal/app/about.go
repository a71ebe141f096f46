package app

import "github.com/peplxx/probability-explorer/internal/ui"

// WriteAbout writes the static About page.
func WriteAbout(w ui.Writer) {
	w.Header("About")
	w.Markdown(`**Probability Explorer** is an interactive tool for learning probability.

- **Continuous Distributions** and **Discrete Distributions** show the formula, a plot of the
  density or mass function and the key properties of each distribution. Move a slider and the plot
  follows, or switch auto-update off and press **Calculate Distribution**.
- **Experiments** run small simulations (coin flips, dice, Monte Carlo estimation of π, random walks,
  the Central Limit Theorem, Student's t-test and a Markov chain) and compare the results with theory.

Every experiment draws fresh random numbers on each run.`)
	w.Markdown("📚 **Learn More:** [Probability theory](https://en.wikipedia.org/wiki/Probability_theory)")
}
