package api

import (
	"context"
	"net/http"
	"net/url"
)

// OverallStats returns platform-wide usage counters. Admin only.
func (c *Client) OverallStats(ctx context.Context) (*OverallStats, error) {
	env, err := c.do(ctx, http.MethodGet, "/analytics/overall", nil)
	if err != nil {
		return nil, err
	}
	var stats OverallStats
	if err := decodeData(env, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// UserStats returns usage counters for one user; an empty id means the
// current user.
func (c *Client) UserStats(ctx context.Context, userID string) (*UserStats, error) {
	path := "/analytics/user"
	if userID != "" {
		path += "/" + url.PathEscape(userID)
	}
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var stats UserStats
	if err := decodeData(env, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) RecentActivity(ctx context.Context, userID string) ([]ActivityEntry, error) {
	path := "/analytics/recent"
	if userID != "" {
		path += "/" + url.PathEscape(userID)
	}
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Activity []ActivityEntry `json:"activity"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	return payload.Activity, nil
}

func (c *Client) TrendingSubjects(ctx context.Context) ([]TrendingSubject, error) {
	env, err := c.do(ctx, http.MethodGet, "/analytics/trending-subjects", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Subjects []TrendingSubject `json:"subjects"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	return payload.Subjects, nil
}

func (c *Client) DifficultyStats(ctx context.Context) (*DifficultyStats, error) {
	env, err := c.do(ctx, http.MethodGet, "/analytics/difficulty-stats", nil)
	if err != nil {
		return nil, err
	}
	var stats DifficultyStats
	if err := decodeData(env, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
