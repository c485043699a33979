package listing

import "strings"

const MaxTitleLength = 200

type Status string

const (
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusSold, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// Sold and cancelled are terminal
func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusCancelled
}

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if len(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

type PriceCents struct {
	value int64
}

func NewPriceCents(v int64) (PriceCents, error) {
	if v <= 0 {
		return PriceCents{}, ErrInvalidPrice
	}
	return PriceCents{value: v}, nil
}

func (p PriceCents) Value() int64 { return p.value }

type Quantity struct {
	value int32
}

func NewQuantity(v int32) (Quantity, error) {
	if v < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int32 { return q.value }
