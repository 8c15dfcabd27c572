package get_store_status

import (
	"fmt"
	"time"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
)

// findNextOpening ищет ближайший день, когда точка откроется, начиная
// со дня после from и двигаясь по кругу недели. Смещение 7 защитно
// возвращается к исходному дню - на случай, когда вся остальная неделя
// закрыта и открыт только сегодняшний слот на следующей неделе.
//
// Возвращает строку вида "Monday 09:00" или nil, если расписание не
// содержит ни одного открытия (валидный результат, не ошибка).
func findNextOpening(schedule domain.WeeklySchedule, from time.Time) *string {
	currentDay := int(from.Weekday())

	for offset := 1; offset <= 7; offset++ {
		checkDay := (currentDay + offset) % 7

		entry := schedule.ByDay(checkDay)
		if entry == nil || entry.IsClosed || entry.OpenTime == nil {
			continue
		}

		result := fmt.Sprintf("%s %s", domain.DayNames[checkDay], entry.OpenTime.String())
		return &result
	}

	return nil
}
