package config

import "testing"

func TestIsProductionCredential(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"bare name", "prod.json", true},
		{"relative path", "./keys/prod.json", true},
		{"absolute path", "/etc/firebase/prod.json", true},
		{"different name", "staging.json", false},
		{"prefix only", "prod.json.bak", false},
		{"suffix only", "my-prod.json", false},
		{"case sensitive", "Prod.json", false},
		{"upper case", "PROD.JSON", false},
		{"directory named prod.json", "prod.json/key.json", false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProductionCredential(tt.path); got != tt.want {
				t.Errorf("IsProductionCredential(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
