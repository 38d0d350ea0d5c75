package game

// EventLog is an append-only, ordered record of a game. Events are never
// removed or reordered.
type EventLog struct {
	events []Event
}

// NextEventNumber is one more than the highest number logged, or 1
func (l *EventLog) NextEventNumber() int {
	max := 0
	for _, e := range l.events {
		if e.Number > max {
			max = e.Number
		}
	}
	return max + 1
}

// Append numbers and records events in the order given
func (l *EventLog) Append(events ...Event) {
	next := l.NextEventNumber()
	for _, e := range events {
		e.Number = next
		next++
		l.events = append(l.events, e)
	}
}

// Events returns a copy of every event
func (l *EventLog) Events() []Event {
	return l.Since(0)
}

// Since returns a copy of the events numbered after number
func (l *EventLog) Since(number int) []Event {
	out := []Event{}
	for _, e := range l.events {
		if e.Number > number {
			out = append(out, e)
		}
	}
	return out
}

// OfType returns a copy of the events of type et
func (l *EventLog) OfType(et EventType) []Event {
	out := []Event{}
	for _, e := range l.events {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}

func (l *EventLog) Len() int {
	return len(l.events)
}

// Last returns the most recent event
func (l *EventLog) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[len(l.events)-1], true
}

// Clone returns a log that shares no memory with l
func (l *EventLog) Clone() EventLog {
	events := make([]Event, len(l.events))
	copy(events, l.events)
	return EventLog{events: events}
}
