package converter

import (
	"fortune_wheel/internal/api/dto/wheel"
	"fortune_wheel/internal/model"
	"time"
)

func ToSpinResponse(d model.Decision, duration time.Duration) wheel.SpinResponse {
	return wheel.SpinResponse{
		SpinID:        d.SpinID,
		Strategy:      string(d.Strategy),
		Probability:   d.Probability,
		Won:           d.Won,
		PrizeIndex:    d.PrizeIndex,
		Prize:         toPrize(d.Prize),
		TargetAngle:   d.TargetAngle,
		TotalRotation: d.TotalRotation,
		DurationMs:    duration.Milliseconds(),
		Respin:        d.Respin,
	}
}

func ToCompleteResponse(c model.SpinCompletion) wheel.CompleteResponse {
	return wheel.CompleteResponse{
		SpinID:     c.Decision.SpinID,
		Won:        c.Decision.Won,
		Prize:      toPrize(c.Decision.Prize),
		Respin:     c.Decision.Respin,
		HistoryLen: c.HistoryLen,
	}
}

func ToHistoryResponse(h model.History) wheel.HistoryResponse {
	history := make([]bool, len(h))
	copy(history, h)
	return wheel.HistoryResponse{
		History: history,
		Count:   len(h),
		WinRate: h.WinRate(),
	}
}

// ToPrizesResponse - таблица секторов с углами. angle(i) - центр сектора i
func ToPrizesResponse(prizes []model.Prize, sectionAngle float64, angle func(i int) float64) wheel.PrizesResponse {
	sections := make([]wheel.Section, len(prizes))
	for i, p := range prizes {
		sections[i] = wheel.Section{
			Prize:       toPrize(p),
			Index:       i,
			CenterAngle: angle(i),
		}
	}
	return wheel.PrizesResponse{
		SectionAngle: sectionAngle,
		Sections:     sections,
	}
}

func toPrize(p model.Prize) wheel.Prize {
	return wheel.Prize{
		Name:   p.Name,
		Weight: p.Weight,
		Color:  p.Color,
		Lose:   p.Lose,
		Respin: p.Respin,
	}
}
