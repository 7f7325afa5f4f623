package models

import "strings"

type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulation  CyclePhase = "ovulation"
	PhaseLuteal     CyclePhase = "luteal"
)

// AllPhases lists every phase in cycle order.
func AllPhases() []CyclePhase {
	return []CyclePhase{PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal}
}

func ParseCyclePhase(value string) (CyclePhase, bool) {
	phase := CyclePhase(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range AllPhases() {
		if phase == known {
			return phase, true
		}
	}
	return "", false
}
