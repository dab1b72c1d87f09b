package statgo

import "fmt"

// CapacityError reports a counter declaration that would push the registry's
// offset cursor past the arena capacity ceiling. It means more counters were
// declared than the arena was sized for, a configuration error, so it is
// raised as a panic at declaration time rather than returned.
type CapacityError struct {
	Counter  string // name of the counter being declared
	Need     int    // bytes requested
	Offset   int    // offset the counter would have started at
	Capacity int    // configured arena capacity ceiling
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("statgo: counter %q needs %d bytes at offset %d, arena capacity is %d",
		e.Counter, e.Need, e.Offset, e.Capacity)
}

// NoTargetError reports arithmetic on a counter whose target arena was never
// set. The counter-update path carries no error returns, so this is raised
// as a panic at first use.
type NoTargetError struct {
	Counter string
}

func (e *NoTargetError) Error() string {
	return fmt.Sprintf("statgo: counter %q has no target arena", e.Counter)
}

// IndexError reports an out-of-range element access on an array counter.
type IndexError struct {
	Counter string
	Index   int
	Len     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("statgo: index %d out of range for array %q of length %d",
		e.Index, e.Counter, e.Len)
}
