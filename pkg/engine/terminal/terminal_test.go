package terminal

import "testing"

func TestEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"132", 132},
		{"", 80},
		{"wide", 80},
		{"-5", 80},
		{"0", 80},
	}
	for _, tt := range tests {
		t.Setenv("COLUMNS", tt.value)
		if got := envInt("COLUMNS", 80); got != tt.want {
			t.Errorf("envInt(COLUMNS=%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestWidthPositive(t *testing.T) {
	if w := Width(); w <= 0 {
		t.Errorf("Width() = %d, want > 0", w)
	}
}
