package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"OPENAI *CHATGPT", "Openai Chatgpt"},
		{"NETFLIX *PREMIUM", "Netflix Premium"},
		{"TRYG FORSIKRING A/S", "Tryg Forsikring A S"},
		{"https://spotify.com payment", "Payment"},
		{"SPOTIFY_DK_12345", "Spotify Dk 12345"},
		{"   Viaplay   ", "Viaplay"},
		{"", "Ukendt"},
		{"***", "Ukendt"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanDescription(tc.in))
		})
	}
}
