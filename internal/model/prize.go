package model

// Prize - сектор колеса
type Prize struct {
	Name   string
	Weight float64 // Относительная доля сектора (0, 100]
	Color  string
	Lose   bool // Сектор без приза
	Respin bool // Сектор "крути еще раз"
}

// Won - считается ли выпадение сектора выигрышем
func (p Prize) Won() bool {
	return !p.Lose
}
