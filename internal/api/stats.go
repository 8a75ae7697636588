package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"telestat/internal/model"
)

func limitValues(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

// Overview fetches the aggregate counters panel.
func (c *Client) Overview(ctx context.Context) (*model.Overview, error) {
	var out model.Overview
	if err := c.getJSON(ctx, "/stats/overview/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopUsers fetches the most-active-users ranking.
func (c *Client) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	var out []model.TopUser
	if err := c.getJSON(ctx, "/stats/top-users/", limitValues(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WordFrequency fetches the most frequent words ranking.
func (c *Client) WordFrequency(ctx context.Context, limit int) ([]model.WordCount, error) {
	var out []model.WordCount
	if err := c.getJSON(ctx, "/stats/word-frequency/", limitValues(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MessagesPerDay fetches daily message counts for the last days.
func (c *Client) MessagesPerDay(ctx context.Context, days int) ([]model.DayCount, error) {
	var query url.Values
	if days > 0 {
		query = url.Values{"days": []string{strconv.Itoa(days)}}
	}
	var out []model.DayCount
	if err := c.getJSON(ctx, "/stats/messages-per-day/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MessagesPerHour fetches hourly message counts for the last day.
func (c *Client) MessagesPerHour(ctx context.Context) ([]model.HourCount, error) {
	var out []model.HourCount
	if err := c.getJSON(ctx, "/stats/messages-per-hour/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MediaDistribution fetches the media-type distribution.
func (c *Client) MediaDistribution(ctx context.Context) ([]model.MediaCount, error) {
	var out []model.MediaCount
	if err := c.getJSON(ctx, "/stats/media-distribution/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopTopics fetches the most common topics ranking.
func (c *Client) TopTopics(ctx context.Context, limit int) ([]model.TopicCount, error) {
	var out []model.TopicCount
	if err := c.getJSON(ctx, "/stats/top-topics/", limitValues(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SentimentOverall fetches the overall sentiment panel.
func (c *Client) SentimentOverall(ctx context.Context) (*model.SentimentOverall, error) {
	var out model.SentimentOverall
	if err := c.getJSON(ctx, "/stats/sentiment-overall/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GroupComparison fetches the cross-group comparison panel.
func (c *Client) GroupComparison(ctx context.Context) (*model.GroupComparison, error) {
	var out model.GroupComparison
	if err := c.getJSON(ctx, "/stats/group-comparison/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplyChainStats fetches the reply-chain panel.
func (c *Client) ReplyChainStats(ctx context.Context) (*model.ReplyChainStats, error) {
	var out model.ReplyChainStats
	if err := c.getJSON(ctx, "/stats/reply-chain/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserProfile fetches the statistics panel for a single user.
func (c *Client) UserProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	var out model.UserProfile
	path := fmt.Sprintf("/stats/user/%d/", userID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
