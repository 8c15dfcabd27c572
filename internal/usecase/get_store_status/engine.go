package get_store_status

import (
	"fmt"
	"time"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	"github.com/AjwadDaiki/isopen-service/pkg/ptr"
	"github.com/AjwadDaiki/isopen-service/pkg/types"
)

// computeOpenStatus вычисляет статус открыто/закрыто для недельного расписания
// в указанной таймзоне на момент now. Чистая функция без побочных эффектов.
//
// Порядок приоритетов (первое совпадение выигрывает):
// 1. is24h - бренд всегда открыт, расписание игнорируется
// 2. specialHours - разовая замена сегодняшнего дня, перекрывает и праздник
// 3. holiday с affectsAll - принудительное закрытие на сегодня
// 4. обычная оценка недельного расписания
func computeOpenStatus(
	schedule domain.WeeklySchedule,
	timezone string,
	is24h bool,
	holiday *domain.HolidayOverride,
	special *domain.DayHours,
	now time.Time,
) (*domain.OpenStatus, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, timezone, err)
	}
	localNow := now.In(loc)

	status := &domain.OpenStatus{
		LocalTime: localNow.Format(domain.TimeFormat),
		Timezone:  timezone,
	}

	// 1. Круглосуточный бренд: расписание не оценивается вообще
	if is24h {
		status.IsOpen = true
		status.Reason = domain.Reason24h
		status.TodayHours = domain.LabelOpen24Hours
		return status, nil
	}

	// 2. Разовое исключение: оценивается как сегодняшний день,
	// праздничная ветка при этом пропускается
	if special != nil {
		return evaluateDay(schedule, special, localNow, status)
	}

	// 3. Праздник: закрыто на сегодня, следующее открытие ищется
	// по обычному недельному расписанию
	if holiday != nil && holiday.AffectsAll {
		status.IsOpen = false
		status.Reason = domain.ReasonHoliday
		status.HolidayName = ptr.Ptr(holiday.Name)
		status.OpensAt = findNextOpening(schedule, localNow)
		status.TodayHours = fmt.Sprintf("Closed – %s", holiday.Name)
		return status, nil
	}

	// 4. Обычная оценка недельного расписания
	today := schedule.ByDay(int(localNow.Weekday()))
	return evaluateDay(schedule, today, localNow, status)
}

// evaluateDay оценивает расписание с today в роли сегодняшнего дня.
// Сначала проверяется хвост вчерашнего окна через полночь, затем
// сегодняшнее окно [open, close).
func evaluateDay(
	schedule domain.WeeklySchedule,
	today *domain.DayHours,
	localNow time.Time,
	status *domain.OpenStatus,
) (*domain.OpenStatus, error) {
	// Хвост вчерашнего окна: если вчера закрывались после полуночи и
	// закрытие ещё не наступило, мы всё ещё открыты. Проверка идёт
	// раньше оценки сегодняшнего окна.
	yesterday := schedule.ByDay((int(localNow.Weekday()) + 6) % 7)
	if yesterday != nil && yesterday.SpansMidnight && yesterday.HasWindow() {
		spillClose, err := instantAt(localNow, *yesterday.CloseTime)
		if err != nil {
			return nil, err
		}
		if localNow.Before(spillClose) {
			status.IsOpen = true
			status.Reason = domain.ReasonOpen
			status.ClosesAt = ptr.Ptr(yesterday.CloseTime.String())
			status.ClosesIn = domain.NewCountdown(spillClose.Sub(localNow))
			status.TodayHours = todayHoursLabel(today)
			return status, nil
		}
	}

	// Нет записи на сегодня, явно закрыто или нет окна - закрыто весь день
	if today == nil || !today.HasWindow() {
		status.IsOpen = false
		status.Reason = domain.ReasonClosedToday
		status.OpensAt = findNextOpening(schedule, localNow)
		status.TodayHours = domain.LabelClosedToday
		return status, nil
	}

	openAt, err := instantAt(localNow, *today.OpenTime)
	if err != nil {
		return nil, err
	}
	closeAt, err := instantAt(localNow, *today.CloseTime)
	if err != nil {
		return nil, err
	}
	if today.SpansMidnight {
		// Закрытие приходится на следующий календарный день
		closeAt = closeAt.AddDate(0, 0, 1)
	}

	status.TodayHours = todayHoursLabel(today)

	switch {
	case !localNow.Before(openAt) && localNow.Before(closeAt):
		// Внутри окна [open, close)
		status.IsOpen = true
		status.Reason = domain.ReasonOpen
		status.ClosesAt = ptr.Ptr(today.CloseTime.String())
		status.ClosesIn = domain.NewCountdown(closeAt.Sub(localNow))

	case localNow.Before(openAt):
		// Ещё не открылись: откроются позже сегодня
		status.IsOpen = false
		status.Reason = domain.ReasonClosedHours
		status.OpensAt = ptr.Ptr(today.OpenTime.String())
		status.OpensIn = domain.NewCountdown(openAt.Sub(localNow))

	default:
		// Уже закрылись: следующее открытие ищем начиная с завтра,
		// opensIn остаётся nil - он только для "откроется позже сегодня"
		status.IsOpen = false
		status.Reason = domain.ReasonClosedHours
		status.OpensAt = findNextOpening(schedule, localNow)
	}

	return status, nil
}

// instantAt строит конкретный момент времени: календарный день localNow
// с часами и минутами из ts, в таймзоне localNow
func instantAt(localNow time.Time, ts types.TimeString) (time.Time, error) {
	hour, minute, err := ts.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		localNow.Year(), localNow.Month(), localNow.Day(),
		hour, minute, 0, 0,
		localNow.Location(),
	), nil
}

// todayHoursLabel форматирует окно сегодняшнего дня для вывода
func todayHoursLabel(today *domain.DayHours) string {
	if today == nil || !today.HasWindow() {
		return domain.LabelClosedToday
	}
	return fmt.Sprintf("%s – %s", today.OpenTime.String(), today.CloseTime.String())
}
