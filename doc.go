// Package symcalc is a deterministic symbolic calculus kernel for Go.
//
// Expressions are trees of tagged nodes owned by an Arena and addressed by
// stable handles; nodes are immutable once built, so every operation returns
// a new handle into the same arena. The engine provides:
//   - Exact rational arithmetic (math/big.Rat)
//   - Structural equality (order-sensitive, no algebraic reasoning)
//   - Rule-based simplification with a fixed, ordered rewrite table
//   - Partial symbolic differentiation and integration; shapes the rule
//     tables cannot resolve stay behind as symbolic d/dx and ∫ nodes
//   - Substitution and strict numeric evaluation
//
// The arena is append/build-only during normal use; reclaim memory with
// Arena.Clear when a whole computation is finished. An Arena is not safe for
// concurrent writers.
package symcalc
