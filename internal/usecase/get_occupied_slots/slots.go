package get_occupied_slots

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// buildGrid раскладывает бронирования по каталогу слотов
// Метки вне каталога (данные до смены сетки) в ответ не попадают
func buildGrid(bookings []*domain.Booking) ([]domain.Slot, []Slot) {
	taken := make(map[domain.Slot]SlotStatus, len(bookings))
	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		status := SlotBooked
		if b.IsBlocked() {
			status = SlotBlocked
		}
		taken[b.StartTime] = status
	}

	occupied := make([]domain.Slot, 0, len(taken))
	grid := make([]Slot, 0, len(domain.SlotCatalog))
	for _, s := range domain.SlotCatalog {
		status, ok := taken[s]
		if !ok {
			status = SlotFree
		} else {
			occupied = append(occupied, s)
		}
		grid = append(grid, Slot{StartTime: s, Status: status})
	}

	return occupied, grid
}
