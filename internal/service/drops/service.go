package drops

import "time"

// Countdown is the time remaining until the next drop goes live, broken into
// display units the way the drops page renders them.
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Live    bool `json:"live"`
}

type Service struct {
	next time.Time
}

// New returns a service counting down to the given drop instant.
func New(next time.Time) *Service {
	return &Service{next: next}
}

func (s *Service) NextDropAt() time.Time {
	return s.next
}

// Until computes the countdown at the given instant, clamped to zero once the
// drop is live.
func (s *Service) Until(now time.Time) Countdown {
	remaining := s.next.Sub(now)
	if remaining <= 0 {
		return Countdown{Live: true}
	}
	return Countdown{
		Days:    int(remaining / (24 * time.Hour)),
		Hours:   int(remaining/time.Hour) % 24,
		Minutes: int(remaining/time.Minute) % 60,
		Seconds: int(remaining/time.Second) % 60,
	}
}
