package wheel

import (
	"fortune_wheel/internal/model"
	"math"
	"math/rand/v2"
	"testing"
)

// seqSource отдает заданные значения по кругу
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func history(wins, total int) model.History {
	h := make(model.History, 0, total)
	for i := 0; i < total; i++ {
		h = append(h, i < wins)
	}
	return h
}

func TestWinProbability(t *testing.T) {
	tests := []struct {
		name string
		h    model.History
		want float64
	}{
		{"empty", model.History{}, 0.90},
		{"nil", nil, 0.90},
		{"full window 10 wins", history(10, 10), 0.80},
		{"full window 9 wins", history(9, 10), 0.80},
		{"full window 8 wins", history(8, 10), 0.90},
		{"full window 7 wins", history(7, 10), 0.95},
		{"full window no wins", history(0, 10), 0.95},
		{"one loss", model.History{false}, 0.90},
		{"one win", model.History{true}, 0.85},
		{"5 entries 3 wins", history(3, 5), 0.95},
		{"5 entries 4 wins", history(4, 5), 0.90},
		{"5 entries 5 wins", history(5, 5), 0.85},
		{"only last 10 count", append(history(0, 5), history(10, 10)...), 0.80},
		{"old wins ignored", append(history(10, 10), history(7, 10)...), 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WinProbability(tt.h); got != tt.want {
				t.Errorf("WinProbability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinProbabilityIsNeverCertain(t *testing.T) {
	allowed := map[float64]bool{0.80: true, 0.85: true, 0.90: true, 0.95: true}
	rnd := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 2000; i++ {
		h := make(model.History, rnd.IntN(model.HistoryCapacity+1))
		for j := range h {
			h[j] = rnd.IntN(2) == 0
		}
		if p := WinProbability(h); !allowed[p] {
			t.Fatalf("unexpected probability %v for %v", p, h)
		}
	}
}

func TestPickPrizeConverges(t *testing.T) {
	prizes := []model.Prize{
		{Name: "a", Weight: 50},
		{Name: "b", Weight: 30},
		{Name: "c", Weight: 15},
		{Name: "d", Weight: 5},
	}
	const trials = 200000
	rnd := rand.New(rand.NewPCG(1, 2))

	counts := make([]int, len(prizes))
	for i := 0; i < trials; i++ {
		idx := PickPrize(prizes, rnd)
		if idx < 0 || idx >= len(prizes) {
			t.Fatalf("index out of range: %d", idx)
		}
		counts[idx]++
	}

	for i, p := range prizes {
		got := float64(counts[i]) / trials
		want := p.Weight / 100
		if math.Abs(got-want) > 0.01 {
			t.Errorf("prize %s: frequency %.4f, want %.4f", p.Name, got, want)
		}
	}
}

func TestPickPrizeUnnormalizedWeights(t *testing.T) {
	prizes := []model.Prize{{Name: "a", Weight: 1}, {Name: "b", Weight: 3}}

	tests := []struct {
		r    float64
		want int
	}{
		{0, 0},
		{0.2499, 0},
		{0.25, 1},
		{0.9999999, 1},
	}
	for _, tt := range tests {
		if got := PickPrize(prizes, &seqSource{vals: []float64{tt.r}}); got != tt.want {
			t.Errorf("r=%v: got %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPickPrizeFallsBackToLast(t *testing.T) {
	prizes := []model.Prize{{Name: "a", Weight: 1}, {Name: "b", Weight: 1}}

	// r == total не должен выходить за пределы таблицы
	if got := PickPrize(prizes, &seqSource{vals: []float64{1}}); got != 1 {
		t.Fatalf("got %d, want last index", got)
	}
}

var adaptivePrizes = []model.Prize{
	{Name: "Vaso", Weight: 25},
	{Name: "Nada", Weight: 25, Lose: true},
	{Name: "Remera", Weight: 25},
	{Name: "Otra vez", Weight: 25, Lose: true},
}

func TestDecideAdaptiveWin(t *testing.T) {
	rnd := &seqSource{vals: []float64{0.5, 0.9}}

	d := Decide(model.History{}, rnd, Params{Strategy: model.StrategyAdaptive, Prizes: adaptivePrizes, FullTurns: 5})

	if d.Probability != 0.90 {
		t.Fatalf("probability = %v", d.Probability)
	}
	if !d.Won {
		t.Fatal("0.5 < 0.90 must win")
	}
	if d.PrizeIndex != 2 || d.Prize.Name != "Remera" {
		t.Fatalf("expected second winning section, got %d %q", d.PrizeIndex, d.Prize.Name)
	}
	if d.TargetAngle != 225 || d.TotalRotation != 5*360+225 {
		t.Fatalf("angles %v %v", d.TargetAngle, d.TotalRotation)
	}
}

func TestDecideAdaptiveLoss(t *testing.T) {
	rnd := &seqSource{vals: []float64{0.95, 0}}

	d := Decide(history(10, 10), rnd, Params{Strategy: model.StrategyAdaptive, Prizes: adaptivePrizes, FullTurns: 3})

	if d.Probability != 0.80 {
		t.Fatalf("probability = %v", d.Probability)
	}
	if d.Won {
		t.Fatal("0.95 >= 0.80 must lose")
	}
	if !d.Prize.Lose {
		t.Fatalf("loss must land on a losing section, got %q", d.Prize.Name)
	}
}

func TestDecideAdaptiveWithoutLosingSections(t *testing.T) {
	prizes := []model.Prize{{Name: "a", Weight: 1}, {Name: "b", Weight: 1}}
	rnd := &seqSource{vals: []float64{0.99, 0.6}}

	d := Decide(nil, rnd, Params{Strategy: model.StrategyAdaptive, Prizes: prizes, FullTurns: 3})

	if d.Won {
		t.Fatal("coin flip decides the outcome")
	}
	if d.PrizeIndex != 1 {
		t.Fatalf("fallback to full table expected, got %d", d.PrizeIndex)
	}
}

func TestDecideWeighted(t *testing.T) {
	prizes := []model.Prize{
		{Name: "Vasito", Weight: 40},
		{Name: "Stickers", Weight: 40},
		{Name: "Gira de nuevo", Weight: 20, Respin: true},
	}

	d := Decide(model.History{false, false}, &seqSource{vals: []float64{0.85}}, Params{Strategy: model.StrategyWeighted, Prizes: prizes, FullTurns: 5})

	if d.Strategy != model.StrategyWeighted {
		t.Fatalf("strategy = %q", d.Strategy)
	}
	if d.PrizeIndex != 2 || !d.Respin || !d.Won {
		t.Fatalf("unexpected decision %+v", d)
	}
	if d.Probability != 1 {
		t.Fatalf("all sections win, probability = %v", d.Probability)
	}
}

func TestDecideWeightedWithLosingSections(t *testing.T) {
	d := Decide(nil, &seqSource{vals: []float64{0.3}}, Params{Strategy: model.StrategyWeighted, Prizes: adaptivePrizes, FullTurns: 5})

	if d.PrizeIndex != 1 || d.Won {
		t.Fatalf("unexpected decision %+v", d)
	}
	if d.Probability != 0.5 {
		t.Fatalf("probability = %v, want share of winning weight", d.Probability)
	}
}

func TestDecideUnknownStrategyIsWeighted(t *testing.T) {
	prizes := []model.Prize{{Name: "a", Weight: 1}}

	d := Decide(nil, &seqSource{vals: []float64{0.3}}, Params{Prizes: prizes, FullTurns: 1})
	if d.Strategy != model.StrategyWeighted || d.PrizeIndex != 0 {
		t.Fatalf("unexpected decision %+v", d)
	}
}
