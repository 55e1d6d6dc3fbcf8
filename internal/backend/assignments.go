package backend

import (
	"context"
	"fmt"
	"io"
)

func (c *Client) CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (*Assignment, error) {
	var out Assignment
	if err := c.Post(ctx, "/api/assignments", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClassAssignments(ctx context.Context, classID int) ([]Assignment, error) {
	var out []Assignment
	if err := c.Get(ctx, fmt.Sprintf("/api/classes/%d/assignments", classID), &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AssignmentDetail(ctx context.Context, assignmentID int) (*Assignment, error) {
	var out Assignment
	if err := c.Get(ctx, fmt.Sprintf("/api/assignments/%d", assignmentID), &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAssignment(ctx context.Context, assignmentID int, req UpdateAssignmentRequest) (*Assignment, error) {
	var out Assignment
	if err := c.Put(ctx, fmt.Sprintf("/api/assignments/%d", assignmentID), req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAssignment(ctx context.Context, assignmentID int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/assignments/%d", assignmentID), nil, nil)
}

func (c *Client) SubmitAnswers(ctx context.Context, assignmentID int, req SubmitAnswersRequest) (*Submission, error) {
	var out Submission
	if err := c.Post(ctx, fmt.Sprintf("/api/assignments/%d/submit/typing", assignmentID), req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitScan hands in a scanned answer sheet. The backend runs OCR on
// it and creates the submission from the extracted text.
func (c *Client) SubmitScan(ctx context.Context, assignmentID int, fileName string, file io.Reader) (*SubmitScanResponse, error) {
	var out SubmitScanResponse
	endpoint := fmt.Sprintf("/api/assignments/%d/submit/ocr", assignmentID)
	if err := c.UploadFile(ctx, endpoint, "file", fileName, file, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// MySubmission returns the current student's submission state for an
// assignment, including grades when available.
func (c *Client) MySubmission(ctx context.Context, assignmentID int) (*MySubmission, error) {
	var out MySubmission
	if err := c.Get(ctx, fmt.Sprintf("/api/assignments/%d/my-submission", assignmentID), &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssignmentSubmissions(ctx context.Context, assignmentID int) ([]Submission, error) {
	var out []Submission
	if err := c.Get(ctx, fmt.Sprintf("/api/assignments/%d/submissions", assignmentID), &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}
