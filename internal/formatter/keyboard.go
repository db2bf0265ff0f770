package formatter

import (
	"encoding/json"

	"github.com/go-telegram/bot/models"

	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

// MainKeyboard builds the main menu
func MainKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "🆕 Новая почта", CallbackData: EncodeCallback(appmodels.CallbackData{Action: appmodels.CallbackNewMailbox})}},
			{{Text: "📮 Текущая почта", CallbackData: EncodeCallback(appmodels.CallbackData{Action: appmodels.CallbackCurrentMailbox})}},
			{{Text: "🔐 Получить код", CallbackData: EncodeCallback(appmodels.CallbackData{Action: appmodels.CallbackFetchCodes})}},
		},
	}
}

// BackKeyboard builds the single back-to-menu button
func BackKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "⬅️ Назад", CallbackData: EncodeCallback(appmodels.CallbackData{Action: appmodels.CallbackMenu})}},
		},
	}
}

// EncodeCallback encodes callback data to string
func EncodeCallback(data appmodels.CallbackData) string {
	b, _ := json.Marshal(data)
	return string(b)
}

// DecodeCallback decodes callback data from string
func DecodeCallback(data string) (appmodels.CallbackData, error) {
	var cb appmodels.CallbackData
	err := json.Unmarshal([]byte(data), &cb)
	return cb, err
}
