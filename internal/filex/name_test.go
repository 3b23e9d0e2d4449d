package filex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"W-2 2024.pdf", "W-2_2024.pdf"},
		{"driver's license.jpg", "driver_s_license.jpg"},
		{"simple.pdf", "simple.pdf"},
		{"архив.zip", "_____.zip"},
		{"", "file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.in), "input %q", tt.in)
	}
}

func TestMimeOrDefault(t *testing.T) {
	assert.Equal(t, "application/pdf", MimeOrDefault("application/pdf"))
	assert.Equal(t, DefaultMimeType, MimeOrDefault(""))
	assert.Equal(t, DefaultMimeType, MimeOrDefault("   "))
}
