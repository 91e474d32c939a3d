// Package parsimony implements the grammar-inference core: a dense CNF
// grammar table, a CYK recognizer, a dynamic-programming colorizer, and
// the constraint-graph machinery (intersection, dead-node pruning,
// shortest-path solving) used to derive a single generalized grammar
// fragment from a handful of positive examples.
//
// The package is single-threaded by design (see the concurrency notes on
// CYK and Colorizer): callers own any parallelism across independent
// examples, and every chunked entry point (ParsePartial, ColorizePartial)
// is a cooperative-yield contract, not a background worker.
package parsimony
