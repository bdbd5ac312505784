// Package errors provides structured error types for better observability
// and programmatic error handling across the catalog.
//
// Every constructor in the catalog reports failures as a *StructuredError
// whose Code tells the caller which class of failure occurred:
//
//   - ErrCodeValidation: a building or machine with an invalid footprint,
//     slot count, cycle time or power draw
//   - ErrCodeInvalidShape: a recipe built from a nil machine or unnamed item
//   - ErrCodeInvalidValue: a recipe with empty output, a non-positive
//     quantity, or a cycle time that is missing or negative
//   - ErrCodeUnresolvedReference: a catalog definition naming an unknown
//     item or machine
//   - ErrCodeInvalidRequest: a catalog document or definition that cannot
//     be decoded or fails field validation
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeValidation,
//	    "slot count must be non-negative",
//	    map[string]any{
//	        "machine": "Refining Unit",
//	        "field":   "physical_input_slots",
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeValidation) {
//	    // reject the declaration
//	}
package errors
