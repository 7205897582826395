// Package allocation models the editable allocation table of a stage: one
// primary row per order item plus remainder rows materialized as supply falls
// short. Rows carry the assigned source entity, assigned quantities, the unit
// price and stage-local annotations such as tape color and pickup place.
package allocation
