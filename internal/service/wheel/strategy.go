package wheel

import "fortune_wheel/internal/model"

const (
	// Размер окна истории для адаптивной стратегии
	windowSize = 10

	probBase    = 0.90 // На цели
	probRelax   = 0.80 // Полное окно, выигрышей 9 и больше
	probBoost   = 0.95 // Ниже цели
	probEaseOff = 0.85 // Короткое окно, выше цели
)

// Params - параметры принятия решения
type Params struct {
	Strategy  model.Strategy
	Prizes    []model.Prize
	FullTurns int
}

// WinProbability - вероятность выигрыша следующего спина по истории.
// Всегда одно из 0.80, 0.85, 0.90, 0.95
func WinProbability(h model.History) float64 {
	if len(h) == 0 {
		return probBase
	}

	window := h.Last(windowSize)
	wins := window.Wins()

	if len(window) == windowSize {
		switch {
		case wins >= 9:
			return probRelax
		case wins <= 7:
			return probBoost
		default:
			return probBase
		}
	}

	target := len(window) * 9 / 10
	switch {
	case wins < target:
		return probBoost
	case wins > target:
		return probEaseOff
	default:
		return probBase
	}
}

// PickPrize выбирает индекс сектора пропорционально весам
func PickPrize(prizes []model.Prize, rnd RandomSource) int {
	all := make([]int, len(prizes))
	for i := range prizes {
		all[i] = i
	}
	return pickWeighted(prizes, all, rnd)
}

// pickWeighted - взвешенный выбор среди секторов с индексами idx
func pickWeighted(prizes []model.Prize, idx []int, rnd RandomSource) int {
	var total float64
	for _, i := range idx {
		total += prizes[i].Weight
	}

	r := rnd.Float64() * total
	var cumulative float64
	for _, i := range idx {
		cumulative += prizes[i].Weight
		if cumulative > r {
			return i
		}
	}
	// Погрешность округления
	return idx[len(idx)-1]
}

// pickByOutcome - взвешенный выбор среди секторов с нужным исходом.
// Если таких нет, выбор идет по всей таблице
func pickByOutcome(prizes []model.Prize, won bool, rnd RandomSource) int {
	var idx []int
	for i, p := range prizes {
		if p.Won() == won {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return PickPrize(prizes, rnd)
	}
	return pickWeighted(prizes, idx, rnd)
}

// winShare - доля выигрышных секторов по весу
func winShare(prizes []model.Prize) float64 {
	var total, won float64
	for _, p := range prizes {
		total += p.Weight
		if p.Won() {
			won += p.Weight
		}
	}
	if total == 0 {
		return 0
	}
	return won / total
}

// Decide принимает решение по спину. Чистая функция истории, параметров и генератора.
// SpinID заполняет вызывающий
func Decide(h model.History, rnd RandomSource, params Params) model.Decision {
	d := model.Decision{Strategy: params.Strategy}

	switch params.Strategy {
	case model.StrategyAdaptive:
		d.Probability = WinProbability(h)
		d.Won = rnd.Float64() < d.Probability
		d.PrizeIndex = pickByOutcome(params.Prizes, d.Won, rnd)
	default:
		d.Strategy = model.StrategyWeighted
		d.Probability = winShare(params.Prizes)
		d.PrizeIndex = PickPrize(params.Prizes, rnd)
		d.Won = params.Prizes[d.PrizeIndex].Won()
	}

	d.Prize = params.Prizes[d.PrizeIndex]
	d.Respin = d.Prize.Respin
	d.TargetAngle = TargetAngle(d.PrizeIndex, len(params.Prizes))
	d.TotalRotation = TotalRotation(d.PrizeIndex, len(params.Prizes), params.FullTurns)
	return d
}
