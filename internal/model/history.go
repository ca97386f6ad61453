package model

// HistoryCapacity - сколько последних исходов хранится
const HistoryCapacity = 20

// History - последние исходы спинов, от старых к новым
type History []bool

// Append возвращает новую историю с добавленным исходом.
// При переполнении самые старые записи вытесняются
func (h History) Append(won bool) History {
	next := make(History, 0, HistoryCapacity)
	next = append(next, h...)
	next = append(next, won)
	if len(next) > HistoryCapacity {
		next = next[len(next)-HistoryCapacity:]
	}
	return next
}

// Wins - количество выигрышей
func (h History) Wins() int {
	wins := 0
	for _, won := range h {
		if won {
			wins++
		}
	}
	return wins
}

// Last возвращает последние n записей (или всю историю, если записей меньше)
func (h History) Last(n int) History {
	if n >= len(h) {
		return h
	}
	return h[len(h)-n:]
}

// WinRate - доля выигрышей, 0 для пустой истории
func (h History) WinRate() float64 {
	if len(h) == 0 {
		return 0
	}
	return float64(h.Wins()) / float64(len(h))
}
