// Package kmap minimizes boolean functions of two to five variables laid out
// as Karnaugh maps.
//
// The minimizer is a simplified ESPRESSO-style heuristic:
//
//   - every cell of the grid anchors a fixed catalogue of power-of-two boxes
//     (toroidal on the width and height axes, never wrapping between levels)
//   - a box is a candidate term when it holds no False cell and at least one
//     True cell
//   - candidates wholly contained in another candidate are discarded
//   - the survivors are reduced to an irredundant cover by repeatedly
//     dropping terms whose removal loses no required cell
//
// The result is irredundant, not provably minimum: when several covers of
// equal size exist, the one reached first in ascending candidate order wins.
//
// A Map is the stateful entry point used by front ends: it owns one Grid,
// accepts cell writes and recomputes the cover from scratch on every Solve.
package kmap
