package wheel

type Prize struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color,omitempty"`
	Lose   bool    `json:"lose"`
	Respin bool    `json:"respin"`
}

type SpinResponse struct {
	SpinID        string  `json:"spin_id"`        // Передается обратно в /complete
	Strategy      string  `json:"strategy"`       // weighted | adaptive
	Probability   float64 `json:"probability"`    // Вероятность выигрыша этого спина
	Won           bool    `json:"won"`            // Исход, решен до анимации
	PrizeIndex    int     `json:"prize_index"`    // Сектор, на который укажет стрелка
	Prize         Prize   `json:"prize"`          // Приз сектора
	TargetAngle   float64 `json:"target_angle"`   // Центр сектора, градусы
	TotalRotation float64 `json:"total_rotation"` // Полный поворот для анимации, градусы
	DurationMs    int64   `json:"duration_ms"`    // Длительность анимации
	Respin        bool    `json:"respin"`         // Можно крутить еще раз
}

type CompleteResponse struct {
	SpinID     string `json:"spin_id"`
	Won        bool   `json:"won"`
	Prize      Prize  `json:"prize"`
	Respin     bool   `json:"respin"`
	HistoryLen int    `json:"history_len"`
}

type HistoryResponse struct {
	History []bool  `json:"history"`  // От старых к новым
	Count   int     `json:"count"`    // Длина истории
	WinRate float64 `json:"win_rate"` // Доля выигрышей
}

type Section struct {
	Prize
	Index       int     `json:"index"`
	CenterAngle float64 `json:"center_angle"`
}

type PrizesResponse struct {
	SectionAngle float64   `json:"section_angle"`
	Sections     []Section `json:"sections"`
}
