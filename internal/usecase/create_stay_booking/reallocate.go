package create_stay_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

// resolveWindow находит свободное окно для запрошенного интервала [start, end)
//
// Длительность запроса всегда сохраняется. Если запрошенное окно свободно,
// возвращается без изменений. При конфликте кандидат сдвигается к максимальному
// моменту выезда среди пересекающихся бронирований: [L, L+D), и проверка
// повторяется — не более domain.MaxWindowShiftAttempts раз.
//
// Исчерпание лимита — явная ошибка ErrNoAvailableWindow: возвращать окно,
// которое всё ещё может конфликтовать, нельзя
func (uc *UseCase) resolveWindow(ctx context.Context, roomID int64, start, end time.Time) (time.Time, time.Time, bool, error) {
	duration := end.Sub(start)

	// Вырожденную длительность отклоняет валидация; здесь просто
	// не запускаем поиск, чтобы не зациклиться на нулевом шаге
	if duration <= 0 {
		return start, end, false, nil
	}

	candidateStart, candidateEnd := start, end

	for attempt := 1; attempt <= domain.MaxWindowShiftAttempts; attempt++ {
		overlapping, err := uc.stayRepo.GetActiveOverlapping(ctx, roomID, candidateStart, candidateEnd)
		if err != nil {
			return time.Time{}, time.Time{}, false,
				fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) == 0 {
			reallocated := !candidateStart.Equal(start)
			return candidateStart, candidateEnd, reallocated, nil
		}

		// Сдвигаем кандидата к самому позднему выезду среди пересекающихся
		latestCheckOut := overlapping[0].CheckOut
		for _, booking := range overlapping[1:] {
			if booking.CheckOut.After(latestCheckOut) {
				latestCheckOut = booking.CheckOut
			}
		}

		candidateStart = latestCheckOut
		candidateEnd = latestCheckOut.Add(duration)
	}

	return time.Time{}, time.Time{}, false,
		fmt.Errorf("%w: room=%d, tried %d windows", ErrNoAvailableWindow, roomID, domain.MaxWindowShiftAttempts)
}
