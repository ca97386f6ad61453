package model

// Strategy - стратегия выбора исхода спина
type Strategy string

const (
	// StrategyWeighted - выбор сектора по весам, без истории
	StrategyWeighted Strategy = "weighted"
	// StrategyAdaptive - подстройка вероятности выигрыша под 90% по истории
	StrategyAdaptive Strategy = "adaptive"
)

// Decision - решение по одному спину. Принимается до анимации и больше не меняется
type Decision struct {
	SpinID        string
	Strategy      Strategy
	Probability   float64 // Вероятность выигрыша: монета adaptive или доля выигрышных секторов по весу для weighted
	Won           bool
	PrizeIndex    int
	Prize         Prize
	TargetAngle   float64
	TotalRotation float64
	Respin        bool
}

// SpinCompletion - результат фиксации спина после окончания анимации
type SpinCompletion struct {
	Decision   Decision
	HistoryLen int
}
