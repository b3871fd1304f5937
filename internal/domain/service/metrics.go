package service

import "time"

// Owner check outcomes.
const (
	OwnerCheckGranted = "granted"
	OwnerCheckDenied  = "denied"
	OwnerCheckFailed  = "failed"
)

// Metrics records business counters and timings.
type Metrics interface {
	ObserveDerive(view, sort string, elapsed time.Duration)
	ReviewSubmitted(created bool)
	CheeseAdded()
	OwnerCheck(outcome string)
}
