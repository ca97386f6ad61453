package wheel

import "math/rand/v2"

// RandomSource - источник равномерных чисел в [0, 1)
type RandomSource interface {
	Float64() float64
}

type mathRand struct{}

func (mathRand) Float64() float64 {
	return rand.Float64()
}

// DefaultRandomSource - глобальный генератор math/rand/v2, безопасен для горутин
func DefaultRandomSource() RandomSource {
	return mathRand{}
}
