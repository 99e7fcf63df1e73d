package services

// OrderStatus is a step in the fixed order lifecycle.
type OrderStatus string

const (
	StatusPlaced     OrderStatus = "placed"
	StatusInProgress OrderStatus = "in_progress"
	StatusDelivered  OrderStatus = "delivered"
	StatusPaid       OrderStatus = "paid"
)

// OrderStatuses lists every status in forward order.
var OrderStatuses = []OrderStatus{StatusPlaced, StatusInProgress, StatusDelivered, StatusPaid}

var statusLabels = map[OrderStatus]string{
	StatusPlaced:     "Placed",
	StatusInProgress: "In progress",
	StatusDelivered:  "Delivered",
	StatusPaid:       "Paid",
}

// ParseOrderStatus maps a stored value to a status. Unknown values are
// treated as placed.
func ParseOrderStatus(s string) OrderStatus {
	st := OrderStatus(s)
	if _, ok := statusLabels[st]; ok {
		return st
	}
	return StatusPlaced
}

// Advance returns the next status. Paid is terminal and maps to itself.
func (s OrderStatus) Advance() OrderStatus {
	switch ParseOrderStatus(string(s)) {
	case StatusPlaced:
		return StatusInProgress
	case StatusInProgress:
		return StatusDelivered
	default:
		return StatusPaid
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusPaid
}

func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[StatusPlaced]
}

// UnmarshalText normalizes unknown stored values.
func (s *OrderStatus) UnmarshalText(b []byte) error {
	*s = ParseOrderStatus(string(b))
	return nil
}
