// Package enumerate generates every layout of a square grid over a tile
// alphabet, optionally keeping one representative per symmetry class.
//
// # Enumeration
//
// [All] yields the full Cartesian product of the alphabet repeated size²
// times, reshaped row-major into grids. Order matches an odometer whose last
// cell turns fastest, so for alphabet [G, T] and size 2 the sequence starts
// GG_GG, GG_GT, GG_TG, GG_TT.
//
// The result is an [iter.Seq]: layouts are built one at a time as the consumer
// pulls them, and each range over the sequence starts a fresh enumeration.
// Stop pulling (break out of the loop) to stop the work; nothing is buffered.
// [Count] reports the size of the product without enumerating it.
//
// # Symmetry
//
// [Canonical] maps a grid to a [Signature] shared by all eight images of the
// grid under the dihedral group of the square (rotations by 0, 90, 180 and 270
// degrees and the four reflections). Each image is rendered as rows of kind
// names and the lexicographically smallest one wins.
//
// [Unique] layers a dedup filter on the [All] source: the first grid of every
// signature is kept, the rest are dropped. The set of seen signatures lives
// only for one range over the sequence. Memory grows with the number of
// symmetry classes, but the raw product is still walked in full.
package enumerate
