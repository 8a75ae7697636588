package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"telestat/internal/model"
)

func TestUserDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user *model.User
		want string
	}{
		{"nil user", nil, model.UnknownUserName},
		{"all fields empty", &model.User{}, model.UnknownUserName},
		{
			"full name wins",
			&model.User{FullName: "Alisher Usmonov", FirstName: "Alisher", Username: "alisher"},
			"Alisher Usmonov",
		},
		{
			"first name before username",
			&model.User{FirstName: "Alisher", Username: "alisher"},
			"Alisher",
		},
		{"username as last resort", &model.User{Username: "alisher"}, "alisher"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupDisplayTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		group *model.Group
		want  string
	}{
		{"nil group", nil, ""},
		{"title preferred", &model.Group{Title: "Sales", Name: "old-sales"}, "Sales"},
		{"name as fallback", &model.Group{Name: "old-sales"}, "old-sales"},
		{"both empty", &model.Group{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.group.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageDefaults(t *testing.T) {
	t.Parallel()

	m := model.Message{}
	if got := m.EffectiveMediaType(); got != model.MediaText {
		t.Errorf("EffectiveMediaType() = %q, want %q", got, model.MediaText)
	}
	if got := m.EffectiveSentiment(); got != model.SentimentNeutral {
		t.Errorf("EffectiveSentiment() = %q, want %q", got, model.SentimentNeutral)
	}
	if m.HasMedia() {
		t.Error("bare message should not report media")
	}
	if m.IsReply() {
		t.Error("bare message should not report being a reply")
	}

	reply := int64(4)
	m = model.Message{MediaType: model.MediaVoice, ReplyToMessageID: &reply}
	if !m.HasMedia() || !m.IsReply() {
		t.Errorf("message %+v should report media and reply", m)
	}
}

func TestMessageUnmarshal(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 10,
		"message_id": 555,
		"user": {"id": 2, "full_name": "Bobur Karimov", "username": "bobur"},
		"group": {"id": 3, "title": "Support"},
		"text": "salom",
		"media_type": "photo",
		"reply_to_message_id": 550,
		"is_edited": true,
		"telegram_created_at": "2024-01-15T09:30:00Z",
		"sentiment": "positive"
	}`

	var m model.Message
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m.MessageID != 555 {
		t.Errorf("MessageID = %d, want 555", m.MessageID)
	}
	if got := m.User.DisplayName(); got != "Bobur Karimov" {
		t.Errorf("user = %q", got)
	}
	if got := m.Group.DisplayTitle(); got != "Support" {
		t.Errorf("group = %q", got)
	}
	if m.ReplyToMessageID == nil || *m.ReplyToMessageID != 550 {
		t.Errorf("ReplyToMessageID = %v, want 550", m.ReplyToMessageID)
	}
	want := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	if !m.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", m.CreatedAt, want)
	}
}

func TestMediaLabel(t *testing.T) {
	t.Parallel()

	if got := model.MediaLabel(model.MediaPhoto); got == model.MediaPhoto {
		t.Errorf("MediaLabel(photo) = %q, want a localized label", got)
	}
	if got := model.MediaLabel("holograph"); got != "holograph" {
		t.Errorf("MediaLabel of unknown type = %q, want passthrough", got)
	}
}
