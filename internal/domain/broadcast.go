package domain

// DeliveryFailure records one recipient the broadcast could not reach
type DeliveryFailure struct {
	User User
	Err  error
}

// BroadcastSummary aggregates the outcome of one broadcast run
type BroadcastSummary struct {
	Delivered int
	Failures  []DeliveryFailure
}

// Failed returns the number of recipients that could not be reached
func (s BroadcastSummary) Failed() int {
	return len(s.Failures)
}
