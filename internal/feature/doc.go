// Package feature is the welcome message lifecycle controller: enable,
// disable, and update of the per-guild configuration record, with input
// validation before any store call and view invalidation after every
// successful mutation.
package feature
