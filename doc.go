// Package genetics implements a reusable, swappable-strategy genetic
// algorithm engine. Callers supply a domain chromosome (genes, fitness,
// mutation, deep-copy, repair) and configure the engine's selection,
// crossover, survivor-selection, termination and operator-selection
// strategies; the engine drives the evolutionary loop and returns the
// best chromosome found.
//
// This package began life as github.com/inlined/genetics, a small
// tutorialspoint-inspired toy. It has since grown a generic Chromosome
// contract, an adaptive operator-selection layer (Adaptive Pursuit),
// and a full evolutionary orchestrator (Runner) on top of that
// foundation.
package genetics
