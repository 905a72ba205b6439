package valueobjects

import "fmt"

// TicketStatus is the triage state of a ticket. The board columns map to
// the known statuses below, but the update path deliberately accepts any
// non-empty value verbatim: the board is an advisory guard, not an
// authoritative one, and an operator may move a ticket between any two
// columns.
type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusInProgress TicketStatus = "in-progress"
	StatusDone       TicketStatus = "done"
	StatusBlocked    TicketStatus = "blocked"
)

var knownTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusDone:       true,
	StatusBlocked:    true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

// IsKnown reports whether the status matches one of the board columns.
// Unknown statuses are still persisted; this exists for dashboards that
// want to group tickets into columns.
func (ts TicketStatus) IsKnown() bool {
	return knownTicketStatuses[ts]
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsDone() bool {
	return ts == StatusDone
}

func (ts TicketStatus) IsBlocked() bool {
	return ts == StatusBlocked
}

// KnownStatuses returns the board column statuses in display order.
func KnownStatuses() []TicketStatus {
	return []TicketStatus{StatusNew, StatusInProgress, StatusBlocked, StatusDone}
}

// NewTicketStatus wraps a raw status value. Only empty values are
// rejected; anything else is accepted as-is.
func NewTicketStatus(s string) (TicketStatus, error) {
	if s == "" {
		return "", fmt.Errorf("ticket status cannot be empty")
	}
	return TicketStatus(s), nil
}
