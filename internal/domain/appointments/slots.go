package appointments

// dailySlots es la plantilla fija de horarios: cada hora de 09:00 a 17:00.
var dailySlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// AvailableSlots devuelve los horarios libres de una fecha, en el orden
// ascendente de la plantilla. Un slot está ocupado si y solo si existe una
// visita con ese (date, time) y status scheduled; las canceladas lo liberan.
func AvailableSlots(all []Appointment, date string) []string {
	booked := make(map[string]bool)
	for _, a := range all {
		if a.Date == date && a.Status == StatusScheduled {
			booked[a.Time] = true
		}
	}

	out := make([]string, 0, len(dailySlots))
	for _, slot := range dailySlots {
		if !booked[slot] {
			out = append(out, slot)
		}
	}
	return out
}

// slotTaken: chequeo de conflicto al agendar. Global, no por mascota.
func slotTaken(all []Appointment, date, t string) bool {
	for _, a := range all {
		if a.Date == date && a.Time == t && a.Status != StatusCancelled {
			return true
		}
	}
	return false
}
