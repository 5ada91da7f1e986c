package app

import "time"

// TickMsg triggers a frame update for the marker pulse animation.
type TickMsg time.Time
