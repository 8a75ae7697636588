package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"telestat/internal/model"
)

// MessageQuery narrows a message fetch server-side. Zero-valued fields are
// omitted from the request. Dates use YYYY-MM-DD.
type MessageQuery struct {
	Group     string
	User      string
	Search    string
	DateFrom  string
	DateTo    string
	Sentiment string
	PageSize  int
}

func (q MessageQuery) values() url.Values {
	v := url.Values{}
	if q.Group != "" {
		v.Set("group", q.Group)
	}
	if q.User != "" {
		v.Set("user", q.User)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.DateFrom != "" {
		v.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		v.Set("date_to", q.DateTo)
	}
	if q.Sentiment != "" {
		v.Set("sentiment", q.Sentiment)
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return v
}

// messageEnvelope is the paginated response shape. Depending on backend
// pagination settings the endpoint returns either this envelope or a bare
// array; Messages handles both.
type messageEnvelope struct {
	Results []model.Message `json:"results"`
	Count   int             `json:"count"`
}

// Messages fetches a message page matching the query.
func (c *Client) Messages(ctx context.Context, q MessageQuery) ([]model.Message, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/messages/", q.values(), &raw); err != nil {
		return nil, err
	}
	return decodeMessagePayload(raw)
}

// decodeMessagePayload accepts either a bare array of messages or a
// {results, count} envelope.
func decodeMessagePayload(raw json.RawMessage) ([]model.Message, error) {
	var messages []model.Message
	if err := json.Unmarshal(raw, &messages); err == nil {
		return messages, nil
	}

	var env messageEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: unrecognized message payload shape: %v", ErrFetch, err)
	}
	return env.Results, nil
}

// MessageHistory fetches the edit history of a message by its Telegram
// message id.
func (c *Client) MessageHistory(ctx context.Context, messageID int64) ([]model.EditHistoryEntry, error) {
	var payload struct {
		History []model.EditHistoryEntry `json:"history"`
	}
	path := fmt.Sprintf("/messages/%d/history/", messageID)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.History, nil
}

// MediaFile is a downloaded media payload.
type MediaFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// mediaErrorBody is the structured body the backend sends on a media 404.
// Older backend versions use "note" instead of "error".
type mediaErrorBody struct {
	Error string `json:"error"`
	Note  string `json:"note"`
}

func (b mediaErrorBody) message() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Note
}

// DownloadMedia fetches the media file attached to a message. A structured
// not-found body maps to ErrMediaNotFound; exceeding the media timeout maps
// to ErrMediaTimeout.
func (c *Client) DownloadMedia(ctx context.Context, messageID int64) (*MediaFile, error) {
	path := fmt.Sprintf("/messages/%d/file/", messageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build media request: %w", err)
	}

	resp, err := c.mediaClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.WarnContext(ctx, "Media download timed out", "message_id", messageID)
			return nil, fmt.Errorf("%w: message %d", ErrMediaTimeout, messageID)
		}
		return nil, fmt.Errorf("%w: GET %s: %v", ErrFetch, path, err)
	}
	defer closeBody(ctx, c.log, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		var body mediaErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.message() != "" {
			return nil, fmt.Errorf("%w: message %d: %s", ErrMediaNotFound, messageID, body.message())
		}
		return nil, fmt.Errorf("%w: message %d", ErrMediaNotFound, messageID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrFetch, path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: message %d", ErrMediaTimeout, messageID)
		}
		return nil, fmt.Errorf("%w: GET %s: read body: %v", ErrFetch, path, err)
	}

	return &MediaFile{
		Filename:    filenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func filenameFromDisposition(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
