package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpamFilter_IsSpam(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "plain link",
			text:     "check out http://example.com",
			expected: true,
		},
		{
			name:     "bare www domain",
			text:     "visit www.freecoins.xyz now",
			expected: true,
		},
		{
			name:     "uppercase patterns",
			text:     "Claim your FREE eth now",
			expected: true,
		},
		{
			name:     "airdrop promo",
			text:     "new AIRDROP for everyone",
			expected: true,
		},
		{
			name:     "ru domain",
			text:     "смотрите сайт example.ru",
			expected: true,
		},
		{
			name:     "clean russian question",
			text:     "Какая у вас доставка?",
			expected: false,
		},
		{
			name:     "clean order text",
			text:     "2 кг яблок, Иван, Главная улица 3",
			expected: false,
		},
		{
			name:     "menu label",
			text:     "Узнать цены и товары",
			expected: false,
		},
		{
			name:     "empty text",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewSpamFilter()

			result := filter.IsSpam(tt.text)

			assert.Equal(t, tt.expected, result)
		})
	}
}
