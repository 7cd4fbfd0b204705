package domain

import (
	"errors"
	"fmt"
	"strings"
)

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
)

var (
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch status := OrderStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case StatusPlaced, StatusPreparing, StatusCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted:
		return true
	case StatusPlaced, StatusPreparing:
		return false
	default:
		return false
	}
}

// ValidTransitionsFrom lists the statuses an order may move to next.
func ValidTransitionsFrom(s OrderStatus) []OrderStatus {
	switch s {
	case StatusPlaced:
		return []OrderStatus{StatusPreparing, StatusCompleted}
	case StatusPreparing:
		return []OrderStatus{StatusCompleted}
	case StatusCompleted:
		return nil
	default:
		return nil
	}
}

// CanTransition reports whether from -> to is allowed. Re-targeting the
// current status is accepted.
func CanTransition(from, to OrderStatus) error {
	if from == to {
		return nil
	}
	next := ValidTransitionsFrom(from)
	for _, candidate := range next {
		if candidate == to {
			return nil
		}
	}

	allowed := "none (terminal state)"
	if len(next) > 0 {
		names := make([]string, len(next))
		for i, status := range next {
			names[i] = string(status)
		}
		allowed = strings.Join(names, ", ")
	}
	return fmt.Errorf("%w: cannot transition order from %s to %s (allowed: %s)",
		ErrInvalidTransition, from, to, allowed)
}
