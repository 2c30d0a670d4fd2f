package tray

// StatusCounts aggregates non-empty wells for the status indicator bar.
type StatusCounts struct {
	Total            int
	RequestSent      int
	Unassigned       int
	UnassignedUrgent int
	// RequestedUrgent counts urgent wells again; they also appear in UnassignedUrgent.
	RequestedUrgent int
	Assigned        int
	ByStatus        map[WellStatus]int
}

// CountStatuses tallies every non-empty well across trays.
func CountStatuses(trays []Tray) StatusCounts {
	counts := StatusCounts{ByStatus: make(map[WellStatus]int)}
	for _, t := range trays {
		for _, w := range t.OrderedWells() {
			if !w.Status.Selectable() {
				continue
			}
			counts.Total++
			counts.ByStatus[w.Status]++
			switch w.Status {
			case StatusRequestSent:
				counts.RequestSent++
			case StatusUnassigned:
				counts.Unassigned++
			case StatusUnassignedUrgent:
				counts.UnassignedUrgent++
				counts.RequestedUrgent++
			case StatusAssigned:
				counts.Assigned++
			}
		}
	}
	return counts
}
