// Package worksheet holds the in-memory editing state of one (order, stage)
// pair: the order snapshot, the allocation rows and the derived routes.
// Worksheets live in a store between edits and are flattened to a stage
// payload on save.
package worksheet
