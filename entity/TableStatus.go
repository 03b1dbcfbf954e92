package entity

// TableStatus is the numeric table state shared with the backend. The
// values are part of the wire contract and must not be renumbered.
type TableStatus int

const (
	StatusAvailable  TableStatus = 0 // free, can be opened
	StatusOccupied   TableStatus = 1 // opened, timer running
	StatusWarning    TableStatus = 2 // approaching the dining time limit
	StatusOvertime   TableStatus = 3 // over the dining time limit
	StatusCheckedOut TableStatus = 4 // bill settled
	StatusCleaning   TableStatus = 5 // waiting to be cleaned, not openable
	StatusReserved   TableStatus = 9 // reserved, openable after confirming
)

var statusLabels = map[TableStatus]string{
	StatusAvailable:  "available",
	StatusOccupied:   "occupied",
	StatusWarning:    "warning",
	StatusOvertime:   "overtime",
	StatusCheckedOut: "checked out",
	StatusCleaning:   "cleaning",
	StatusReserved:   "reserved",
}

// Label returns the display text for a status, or "unknown" for values
// outside the enumeration.
func (s TableStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "unknown"
}

// Selectable reports whether a table in this status can be opened.
// Only available and reserved tables qualify.
func (s TableStatus) Selectable() bool {
	return s == StatusAvailable || s == StatusReserved
}
