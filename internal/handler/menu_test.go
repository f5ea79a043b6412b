package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainMenuText(t *testing.T) {
	text := mainMenuText()

	assert.True(t, strings.HasPrefix(text, menuHeader))
	for _, s := range menuSections {
		assert.Contains(t, text, ".م"+s.key)
		assert.Contains(t, text, s.title)
	}
}

func TestMenuSectionText(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		contains string
	}{
		{name: "status section", key: "1", contains: ".نوم"},
		{name: "prices section", key: "2", contains: ".ت1"},
		{name: "users section", key: "3", contains: ".الغاء"},
		{name: "advanced section", key: "4", contains: ".المجموع"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := menuSectionText(tt.key)
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestMenuSectionText_UnknownKeyFallsBackToMenu(t *testing.T) {
	assert.Equal(t, mainMenuText(), menuSectionText("9"))
}

func TestOnlineMessage(t *testing.T) {
	assert.Contains(t, OnlineMessage("مكتبة الطباعة"), "مكتبة الطباعة")
}
