package models

import "fmt"

// OrderStatus is the fulfillment state of an order. Any status may move to
// any other status; only administrators change it.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// progression is the linear path shown to customers. Cancelled sits outside it.
var progression = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusCompleted}

// AllStatuses returns every valid status in display order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled}
}

// ParseStatus returns the status named by s. Matching is exact.
func ParseStatus(s string) (OrderStatus, error) {
	for _, st := range AllStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("status must be one of %v, got %q", AllStatuses(), s)
}

func (s OrderStatus) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Step is the position of s in the progress indicator (0-3), or -1 for
// Cancelled and unknown values.
func (s OrderStatus) Step() int {
	for i, st := range progression {
		if st == s {
			return i
		}
	}
	return -1
}

// IsFailure reports whether s is the terminal failure state.
func (s OrderStatus) IsFailure() bool {
	return s == StatusCancelled
}

// IsTerminal reports whether no further business progress is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
