package create_service_booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/pkg/types"
)

// menuSlot метка слота вместе с её порядковым номером внутри суток
type menuSlot struct {
	label   types.TimeString
	minutes int
}

// parseSlotMenu разбирает меню слотов услуги ("10:00,14:00,18:00")
// в отсортированный по времени список. Метки, которые не парсятся,
// отбрасываются; пустое меню — забота вызывающего кода
func parseSlotMenu(raw string) []menuSlot {
	parts := strings.Split(raw, ",")
	menu := make([]menuSlot, 0, len(parts))

	for _, part := range parts {
		label, err := types.NewTimeStringFromString(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		minutes, err := label.Minutes()
		if err != nil {
			continue
		}
		menu = append(menu, menuSlot{label: label, minutes: minutes})
	}

	sort.Slice(menu, func(i, j int) bool {
		return menu[i].minutes < menu[j].minutes
	})

	return menu
}

// resolveSlot находит свободную пару (дата, слот) для запроса
//
// Перебираются дни от запрошенной даты в пределах domain.MaxSlotSearchDays.
// В первый день кандидатами являются только слоты не раньше запрошенного
// времени; в последующие дни — всё меню в порядке возрастания времени.
// Возвращается первый кандидат, не занятый активным бронированием.
//
// Исчерпание горизонта — явная ошибка ErrNoAvailableSlot
func (uc *UseCase) resolveSlot(
	ctx context.Context,
	serviceID int64,
	menuRaw string,
	requestedDate time.Time,
	requestedSlot types.TimeString,
) (time.Time, types.TimeString, bool, error) {
	requestedMinutes, err := requestedSlot.Minutes()
	if err != nil {
		return time.Time{}, "", false, fmt.Errorf("%w: invalid requested slot: %v", ErrInvalidInput, err)
	}

	menu := parseSlotMenu(menuRaw)

	// Если меню услуги пусто (или целиком не парсится), единственным
	// кандидатом остаётся запрошенный слот
	if len(menu) == 0 {
		menu = []menuSlot{{label: requestedSlot, minutes: requestedMinutes}}
	}

	day := time.Date(requestedDate.Year(), requestedDate.Month(), requestedDate.Day(), 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < domain.MaxSlotSearchDays; offset++ {
		candidateDay := day.AddDate(0, 0, offset)

		bookedSlots, err := uc.serviceBookingRepo.GetBookedSlots(ctx, serviceID, candidateDay)
		if err != nil {
			return time.Time{}, "", false,
				fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
		}

		booked := make(map[types.TimeString]struct{}, len(bookedSlots))
		for _, slot := range bookedSlots {
			booked[slot] = struct{}{}
		}

		for _, candidate := range menu {
			// В день запроса слоты раньше запрошенного времени не рассматриваются
			if offset == 0 && candidate.minutes < requestedMinutes {
				continue
			}

			if _, taken := booked[candidate.label]; taken {
				continue
			}

			reallocated := offset != 0 || candidate.label != requestedSlot
			return candidateDay, candidate.label, reallocated, nil
		}
	}

	return time.Time{}, "", false,
		fmt.Errorf("%w: service=%d, searched %d days", ErrNoAvailableSlot, serviceID, domain.MaxSlotSearchDays)
}
