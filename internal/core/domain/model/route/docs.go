// Package route models the delivery routes derived from assigned allocation
// rows. Each (entity, row) pair yields exactly one route; drivers, labour
// lists and status fields are edited on the route after derivation and must
// survive re-derivation.
package route
