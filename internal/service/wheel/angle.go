package wheel

// SectionAngle - угол одного сектора в градусах
func SectionAngle(sections int) float64 {
	return 360 / float64(sections)
}

// TargetAngle - центр сектора index
func TargetAngle(index, sections int) float64 {
	a := SectionAngle(sections)
	return float64(index)*a + a/2
}

// TotalRotation - полный поворот колеса: fullTurns оборотов и доворот до центра сектора
func TotalRotation(index, sections, fullTurns int) float64 {
	return float64(fullTurns)*360 + TargetAngle(index, sections)
}
