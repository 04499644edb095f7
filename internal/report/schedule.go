package report

import "github.com/xavierca1/outreach-tracker/internal/entity"

// Rótulos do botão de agendamento em massa.
const (
	LabelAllScheduled      = "All Scheduled"
	LabelScheduleAll       = "Schedule All"
	LabelScheduleRemaining = "Schedule Remaining"
)

// UnscheduledCount conta pessoas com pelo menos um slot vazio.
func UnscheduledCount(people []*entity.Person) int {
	count := 0
	for _, p := range people {
		if !p.FullyScheduled() {
			count++
		}
	}
	return count
}

// ScheduleButtonLabel é a tricotomia exata do botão: todo mundo
// agendado, ninguém agendado, ou um meio-termo.
func ScheduleButtonLabel(people []*entity.Person) string {
	u := UnscheduledCount(people)
	switch {
	case u == 0:
		return LabelAllScheduled
	case u == len(people):
		return LabelScheduleAll
	default:
		return LabelScheduleRemaining
	}
}
