// Package schedule gera as datas das três tentativas de outreach de um
// contato. As datas são determinísticas: mesma entrada, mesmas datas —
// o sorteio aleatório que existia no protótipo foi substituído por uma
// cadeia fixa de dias da semana.
package schedule

import "time"

// HolidayCalendar responde se uma data é feriado.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}

// FixedHolidays é um calendário estático de datas YYYY-MM-DD.
type FixedHolidays map[string]bool

func (f FixedHolidays) IsHoliday(t time.Time) bool {
	return f[t.Format("2006-01-02")]
}

// scheduleChain encadeia os dias de envio: quem envia na segunda faz o
// follow-up na quinta, e assim por diante. Fins de semana nunca entram
// na cadeia.
var scheduleChain = map[time.Weekday]time.Weekday{
	time.Monday:    time.Thursday,
	time.Tuesday:   time.Friday,
	time.Wednesday: time.Monday,
	time.Thursday:  time.Monday,
	time.Friday:    time.Tuesday,
}

type Scheduler struct {
	Holidays    HolidayCalendar
	SendHour    int // hora local de envio
	BufferHours int // antecedência mínima para ainda enviar hoje
	Now         func() time.Time
}

func NewScheduler(holidays HolidayCalendar) *Scheduler {
	if holidays == nil {
		holidays = FixedHolidays{}
	}
	return &Scheduler{
		Holidays:    holidays,
		SendHour:    8,
		BufferHours: 2,
		Now:         time.Now,
	}
}

// NextDates devolve as três próximas datas de envio (YYYY-MM-DD) a
// partir de hoje, pulando fins de semana, feriados e o dia de hoje
// quando já passou da janela sendHour - bufferHours.
func (s *Scheduler) NextDates() [3]string {
	return s.NextDatesFrom(s.Now())
}

func (s *Scheduler) NextDatesFrom(start time.Time) [3]string {
	now := s.Now()
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	var dates [3]string
	n := 0

	for n < 3 {
		switch {
		case isWeekend(day), s.Holidays.IsHoliday(day), s.pastBufferToday(day, now):
			day = day.AddDate(0, 0, 1)
		default:
			dates[n] = day.Format("2006-01-02")
			n++

			// pula para o próximo dia da cadeia
			target := scheduleChain[day.Weekday()]
			day = day.AddDate(0, 0, 1)
			for day.Weekday() != target {
				day = day.AddDate(0, 0, 1)
			}
		}
	}

	return dates
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func (s *Scheduler) pastBufferToday(day, now time.Time) bool {
	sameDay := day.Year() == now.Year() && day.YearDay() == now.YearDay()
	return sameDay && now.Hour() >= s.SendHour-s.BufferHours
}
