// Package builder assembles a rectangular [model.Table] from ragged rows.
//
// Short rows are padded by widening one cell: the first cell under
// [model.BiasLeft], the last under [model.BiasRight]. A single-cell row is
// widened the same way under either bias.
//
// [Build] trusts its caller: counts are non-negative, there is one width
// per column, and no row is longer than numCols. [shape.Analyze] produces
// inputs that satisfy all three.
package builder
