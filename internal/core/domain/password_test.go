package domain

import "testing"

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Abcd1234@", true},
		{"valid with different special", "Xy9{pass}", true},
		{"too short", "short", false},
		{"seven chars", "Ab1@xyz", false},
		{"exactly eight chars", "Ab1@wxyz", true},
		{"exactly twenty chars", "Ab1@abcdefghijklmnop", true},
		{"twenty-one chars", "Ab1@abcdefghijklmnopq", false},
		{"no uppercase", "onlylowercase1@", false},
		{"no lowercase", "ONLYUPPERCASE1@", false},
		{"no special char", "NoSpecialChar1", false},
		{"no digit", "NoDigitsHere@", false},
		{"digits only", "12345678", false},
		{"digits and special only", "12345678!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPassword(tt.password); got != tt.want {
				t.Fatalf("ValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}
