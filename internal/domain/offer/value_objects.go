package offer

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// Accepted and rejected are terminal; an offer leaves pending exactly once
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Decision is the resolution requested by the listing owner
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

func NewDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionAccept, DecisionReject:
		return Decision(s), nil
	default:
		return "", ErrInvalidDecision
	}
}

func (d Decision) String() string { return string(d) }

// TargetStatus maps a decision to the offer status it produces
func (d Decision) TargetStatus() Status {
	if d == DecisionAccept {
		return StatusAccepted
	}
	return StatusRejected
}
