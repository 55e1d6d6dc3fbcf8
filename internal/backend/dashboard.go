package backend

import "context"

// DashboardStats aggregates the current user's classes, assignments,
// and scores. The backend scopes the numbers by role.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.Get(ctx, "/api/dashboard/stats", &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentActivity lists the current user's latest events, newest first.
func (c *Client) RecentActivity(ctx context.Context) ([]RecentActivity, error) {
	var out []RecentActivity
	if err := c.Get(ctx, "/api/dashboard/recent-activity", &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}
