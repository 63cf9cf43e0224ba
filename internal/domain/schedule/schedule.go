package schedule

// Grade fixa de horários da barbearia: manhã e tarde/noite em passos de
// 30 minutos. Os tokens HH:MM são zero-padded, então ordenação lexical
// coincide com a ordenação temporal.
var AllTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30", "18:00", "18:30", "19:00",
}

var timeSet = buildTimeSet()

func buildTimeSet() map[string]struct{} {
	s := make(map[string]struct{}, len(AllTimes))
	for _, t := range AllTimes {
		s[t] = struct{}{}
	}
	return s
}

// IsValidTime diz se o token pertence à grade fixa.
func IsValidTime(t string) bool {
	_, ok := timeSet[t]
	return ok
}

// Available devolve AllTimes menos os horários ocupados, preservando a
// ordem da grade.
func Available(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(AllTimes))
	for _, t := range AllTimes {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}
	return free
}
