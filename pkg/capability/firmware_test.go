package capability

import "testing"

func TestParseFirmware(t *testing.T) {
	tests := []struct {
		input string
		want  Firmware
	}{
		{"4.3.9_1172", Firmware{4, 3, 9, 1172}},
		{"4.3.9", Firmware{4, 3, 9, 0}},
		{"1.2", Firmware{1, 2, 0, 0}},
		{" 4.3.9_0100 ", Firmware{4, 3, 9, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFirmware(tt.input)
			if err != nil {
				t.Fatalf("ParseFirmware(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFirmware(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFirmware_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "4.3.9_x", "1.2.3.4", "4..9"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseFirmware(input); err == nil {
				t.Errorf("ParseFirmware(%q) should return error", input)
			}
		})
	}
}

func TestFirmwareCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"4.3.9_1172", "4.3.9_1172", 0},
		{"4.3.9_1172", "4.3.9_1200", -1},
		{"4.3.10_1", "4.3.9_9999", 1},
		{"5.0.0", "4.9.9_9999", 1},
	}
	for _, tt := range tests {
		a, _ := ParseFirmware(tt.a)
		b, _ := ParseFirmware(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
