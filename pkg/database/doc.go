// Package database provides the in-memory registry of items, machines and
// recipes, and the two indexes answering "which recipes produce item X" and
// "which recipes run on machine Y".
//
// Both indexes are a pure function of the recipe list. SetRecipes and
// Rebuild recompute them in one pass and publish the result atomically.
// Lookups that miss return an empty slice, never an error.
package database
