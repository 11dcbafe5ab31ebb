package ticket

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusUsed      Status = "used"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusUsed, StatusExpired:
		return true
	default:
		return false
	}
}

// HoldsCapacity: only pending and paid tickets occupy a slot.
func (s Status) HoldsCapacity() bool {
	return s == StatusPending || s == StatusPaid
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusUsed || s == StatusExpired
}

// CapacityStatuses is the status set the availability counter reads.
var CapacityStatuses = []Status{StatusPending, StatusPaid}
