package formatter

import (
	"strings"
	"testing"

	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

func TestFormatCodeResults(t *testing.T) {
	f := NewTelegramFormatter()

	results := []appmodels.CodeResult{
		{Service: "AdGuard VPN", Subject: "Welcome", Time: "12:34", Code: "123456"},
		{Service: "Неизвестный сервис", Subject: "News <today>", Time: "08:05", Code: ""},
	}
	got := f.FormatCodeResults(results)

	if !strings.Contains(got, "<code>123456</code>") {
		t.Errorf("code not rendered: %q", got)
	}
	if !strings.Contains(got, "—") {
		t.Errorf("missing-code placeholder absent: %q", got)
	}
	if !strings.Contains(got, "News &lt;today&gt;") {
		t.Errorf("subject not escaped: %q", got)
	}
	if !strings.Contains(got, "12:34") || !strings.Contains(got, "08:05") {
		t.Errorf("times missing: %q", got)
	}
}

func TestFormatMailboxCreatedEscapes(t *testing.T) {
	f := NewTelegramFormatter()

	got := f.FormatMailboxCreated("a&b@example.com")
	if !strings.Contains(got, "a&amp;b@example.com") {
		t.Errorf("address not escaped: %q", got)
	}
}

func TestFormatHistory(t *testing.T) {
	f := NewTelegramFormatter()

	if got := f.FormatHistory(nil); !strings.Contains(got, "не создавали") {
		t.Errorf("empty history text: %q", got)
	}

	got := f.FormatHistory([]string{"tg01@example.com", "tg02@example.com"})
	if !strings.Contains(got, "tg01@example.com") || !strings.Contains(got, "tg02@example.com") {
		t.Errorf("addresses missing: %q", got)
	}
}

func TestCallbackRoundTrip(t *testing.T) {
	data := appmodels.CallbackData{Action: appmodels.CallbackFetchCodes}

	decoded, err := DecodeCallback(EncodeCallback(data))
	if err != nil {
		t.Fatalf("DecodeCallback: %v", err)
	}
	if decoded.Action != appmodels.CallbackFetchCodes {
		t.Errorf("Action = %q, want %q", decoded.Action, appmodels.CallbackFetchCodes)
	}
}

func TestDecodeCallbackRejectsGarbage(t *testing.T) {
	if _, err := DecodeCallback("not json"); err == nil {
		t.Fatal("expected error for malformed callback data")
	}
}

func TestMainKeyboardActions(t *testing.T) {
	kb := MainKeyboard()

	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("got %d rows, want 3", len(kb.InlineKeyboard))
	}
	want := []appmodels.CallbackAction{
		appmodels.CallbackNewMailbox,
		appmodels.CallbackCurrentMailbox,
		appmodels.CallbackFetchCodes,
	}
	for i, row := range kb.InlineKeyboard {
		data, err := DecodeCallback(row[0].CallbackData)
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		if data.Action != want[i] {
			t.Errorf("row %d action = %q, want %q", i, data.Action, want[i])
		}
	}
}
