package schedule

import "time"

const layoutHM = "15:04"

// GenerateDaySlots produz os inícios de slot em [start, end), no passo da
// duração. Um slot entra apenas se início+duração <= fim; janela que não
// divide exatamente pela duração trunca o slot parcial final.
func GenerateDaySlots(startHM, endHM string, slotMinutes int) []string {
	if slotMinutes <= 0 {
		return nil
	}

	start, err := time.Parse(layoutHM, startHM)
	if err != nil {
		return nil
	}
	end, err := time.Parse(layoutHM, endHM)
	if err != nil {
		return nil
	}

	step := time.Duration(slotMinutes) * time.Minute

	var slots []string
	for cur := start; !cur.Add(step).After(end); cur = cur.Add(step) {
		slots = append(slots, cur.Format(layoutHM))
	}
	return slots
}

// Contains testa pertencimento na sequência gerada.
func Contains(slots []string, hm string) bool {
	for _, s := range slots {
		if s == hm {
			return true
		}
	}
	return false
}

// Difference preserva a ordem de generated, removendo os horários ocupados.
func Difference(generated, occupied []string) []string {
	taken := make(map[string]struct{}, len(occupied))
	for _, o := range occupied {
		taken[o] = struct{}{}
	}

	free := make([]string, 0, len(generated))
	for _, s := range generated {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
