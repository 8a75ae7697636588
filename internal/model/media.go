package model

// Media types recognized by the backend. Anything else is reported verbatim.
const (
	MediaText      = "text"
	MediaEmoji     = "emoji"
	MediaPhoto     = "photo"
	MediaVideo     = "video"
	MediaVoice     = "voice"
	MediaAudio     = "audio"
	MediaDocument  = "document"
	MediaSticker   = "sticker"
	MediaAnimation = "animation"
	MediaVideoNote = "video_note"
	MediaLocation  = "location"
	MediaContact   = "contact"
	MediaPoll      = "poll"
)

// Sentiment values assigned by the analyzer.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// mediaLabels maps media types to the dashboard's display labels.
var mediaLabels = map[string]string{
	MediaText:      "Matn",
	MediaEmoji:     "Emoji",
	MediaPhoto:     "Rasm",
	MediaVideo:     "Video",
	MediaVoice:     "Ovozli xabar",
	MediaAudio:     "Audio",
	MediaDocument:  "Hujjat",
	MediaSticker:   "Stiker",
	MediaAnimation: "GIF",
	MediaVideoNote: "Video xabar",
	MediaLocation:  "Joylashuv",
	MediaContact:   "Kontakt",
	MediaPoll:      "So'rovnoma",
}

// MediaLabel returns the display label for a media type, falling back to the
// raw type for values the dashboard does not know about.
func MediaLabel(mediaType string) string {
	if label, ok := mediaLabels[mediaType]; ok {
		return label
	}
	return mediaType
}
