package services

import (
	"time"

	"github.com/bloomcycle/bloom/internal/models"
)

// The ovulation window is the fixed pair of cycle days 14 and 15,
// counted from the cycle start. It does not scale with cycle length.
const (
	ovulationWindowStart = 14
	ovulationWindowEnd   = 16
)

// ClassifyPhase derives the cycle phase for a target date from elapsed
// whole days since the cycle start. The first matching range wins; a
// date before the start or at/past the expected cycle length has no
// phase. Pure and cheap, recompute on every query.
func ClassifyPhase(cycle models.Cycle, target time.Time, location *time.Location) (models.CyclePhase, bool) {
	daysSinceStart := WholeDaysBetween(target, cycle.StartDate, location)

	switch {
	case daysSinceStart < 0:
		return "", false
	case daysSinceStart < cycle.PeriodLength:
		return models.PhaseMenstrual, true
	case daysSinceStart < ovulationWindowStart:
		return models.PhaseFollicular, true
	case daysSinceStart < ovulationWindowEnd:
		return models.PhaseOvulation, true
	case daysSinceStart < cycle.CycleLength:
		return models.PhaseLuteal, true
	default:
		return "", false
	}
}
