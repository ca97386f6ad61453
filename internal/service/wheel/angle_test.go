package wheel

import "testing"

func TestTargetAngle(t *testing.T) {
	tests := []struct {
		index, sections int
		want            float64
	}{
		{0, 8, 22.5},
		{3, 8, 157.5},
		{7, 8, 337.5},
		{0, 4, 45},
		{3, 4, 315},
	}
	for _, tt := range tests {
		if got := TargetAngle(tt.index, tt.sections); got != tt.want {
			t.Errorf("TargetAngle(%d, %d) = %v, want %v", tt.index, tt.sections, got, tt.want)
		}
	}
}

func TestTotalRotation(t *testing.T) {
	if got := TotalRotation(3, 8, 5); got != 1800+157.5 {
		t.Fatalf("got %v", got)
	}
	if got := TotalRotation(1, 4, 3); got != 1080+135 {
		t.Fatalf("got %v", got)
	}
}
