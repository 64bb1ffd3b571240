// Package tile defines the closed catalog of park tile kinds.
//
// Every [Kind] carries a fixed [Attributes] record: upfront and yearly cost,
// upfront and yearly CO2 cost, yearly CO2 absorption (negative values are net
// sequestration), a display glyph and a single-letter code. The record is read
// from one table built at package initialization, so a lookup is a single
// indexed read and adding a kind means adding one table row.
//
// # Catalog
//
//	Kind   upfront  yearly  co2 upfront  co2 yearly  absorption  glyph  code
//	Grass        0     100            0          10          -8     🌱     G
//	Tree      1000     400          150          25         -30     🌲     T
//	Path       400      50          110          10           0     ⬜     P
//	Bench     2000     100          140          20           0     🪑     B
//
// Grass is the empty ground, Tree the green obstruction, Path the walkable
// corridor and Bench the seat.
//
// # Unknown Kinds
//
// A Kind value outside the catalog is a programming or data error. [Lookup]
// reports it as an UNKNOWN_TILE_KIND error; the convenience accessors
// ([Kind.Glyph], [Kind.Code], ...) panic instead of returning a default.
package tile
