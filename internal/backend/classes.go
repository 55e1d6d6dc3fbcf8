package backend

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	var out Class
	if err := c.Post(ctx, "/api/classes", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListClasses(ctx context.Context) ([]Class, error) {
	var out []Class
	if err := c.Get(ctx, "/api/classes", &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchClasses(ctx context.Context, query string) ([]Class, error) {
	var out []Class
	endpoint := "/api/classes/search?query=" + url.QueryEscape(query)
	if err := c.Get(ctx, endpoint, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClassDetail(ctx context.Context, classID int) (*ClassDetail, error) {
	var out ClassDetail
	if err := c.Get(ctx, fmt.Sprintf("/api/classes/%d", classID), &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClass(ctx context.Context, classID int, req UpdateClassRequest) (*Class, error) {
	var out Class
	if err := c.Put(ctx, fmt.Sprintf("/api/classes/%d", classID), req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClass(ctx context.Context, classID int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/classes/%d", classID), nil, nil)
}

func (c *Client) JoinClass(ctx context.Context, req JoinClassRequest) (*JoinClassResponse, error) {
	var out JoinClassResponse
	if err := c.Post(ctx, "/api/classes/join", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) InviteCode(ctx context.Context, classID int) (*InviteCodeResponse, error) {
	var out InviteCodeResponse
	if err := c.Post(ctx, fmt.Sprintf("/api/classes/%d/invite", classID), struct{}{}, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveParticipant(ctx context.Context, classID, userID int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/classes/%d/participants/%d", classID, userID), nil, nil)
}
