package get_available_slots

import (
	"github.com/m04kA/HF-AvailabilityService/internal/domain"
)

// blockedIntervals строит список занятых интервалов [start, start+duration)
// из записей на дату
// Учитываются ВСЕ записи независимо от услуги: календарь общий, один мастер
func blockedIntervals(appointments []*domain.Appointment) []domain.Interval {
	blocked := make([]domain.Interval, 0, len(appointments))

	for _, appt := range appointments {
		interval, err := appt.Interval()
		if err != nil {
			// Если не можем вычислить интервал записи, пропускаем её
			continue
		}
		blocked = append(blocked, interval)
	}

	return blocked
}

// enumerateSlots перебирает кандидатов на сетке с фиксированным шагом от открытия
// и возвращает свободные времена начала в минутах с начала суток, по возрастанию
//
// Сетка фиксирована и не зависит от длительности услуги: услуги разной
// длительности получают одни и те же равномерные времена начала, а не
// выравнивание по границам друг друга
//
// Кандидат, которому не хватает времени до закрытия, пропускается целиком -
// никакого усечения или округления
func enumerateSlots(open, close, step, duration int, blocked []domain.Interval) []int {
	slots := make([]int, 0)

	for t := open; t+duration <= close; t += step {
		candidate := domain.Interval{Start: t, End: t + duration}

		// Пересечение полуоткрытых интервалов: [a,b) и [c,d) пересекаются
		// только при a < d && c < b. Граничащие интервалы (b == c) свободны.
		free := true
		for _, b := range blocked {
			if candidate.Overlaps(b) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, t)
		}
	}

	return slots
}
