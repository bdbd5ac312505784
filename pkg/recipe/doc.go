// Package recipe defines Recipe, a fixed transformation of ingredient
// quantities into output quantities on one machine over one cycle time.
//
// # Construction
//
//	ore := item.New("Ferrium Ore", "")
//	ferrium := item.New("Ferrium", "")
//
//	r, err := recipe.New(refiningUnit,
//	    recipe.Of(ferrium, 1),
//	    recipe.Of(ore, 1),
//	)
//
// New checks, in order: the shape of its arguments (ErrCodeInvalidShape),
// a non-empty output list, positive and unique quantities, and finally the
// cycle time (all ErrCodeInvalidValue).
//
// # Timing
//
// An explicit WithTimeSeconds wins; otherwise the machine's declared cycle
// time is inherited. A recipe on a machine that declares no time must carry
// its own. Zero is accepted only on machines that declare a zero cycle time,
// and such recipes report +Inf cycles per minute.
//
// # Derived Values
//
// Name and Icon come from the first output. TotalOutputCount,
// CyclesPerMinute and ItemsPerMinute are computed once at construction.
package recipe
