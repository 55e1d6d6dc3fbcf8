package backend

import (
	"context"
	"fmt"
	"io"
)

func (c *Client) GradeSubmission(ctx context.Context, submissionID int, req GradeSubmissionRequest) (*GradeResponse, error) {
	var out GradeResponse
	endpoint := fmt.Sprintf("/api/grading/submissions/%d/grade", submissionID)
	if err := c.Post(ctx, endpoint, req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// AutoGradeSubmission asks the backend's AI grader for a single
// submission. The grading itself is opaque to the gateway.
func (c *Client) AutoGradeSubmission(ctx context.Context, submissionID int) (*AutoGradeResponse, error) {
	var out AutoGradeResponse
	endpoint := fmt.Sprintf("/api/grading/submissions/%d/auto-grade", submissionID)
	if err := c.Post(ctx, endpoint, struct{}{}, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AutoGradeAll(ctx context.Context, assignmentID int) (*AutoGradeAllResponse, error) {
	var out AutoGradeAllResponse
	endpoint := fmt.Sprintf("/api/grading/assignments/%d/auto-grade-all", assignmentID)
	if err := c.Post(ctx, endpoint, struct{}{}, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssignmentStatistics(ctx context.Context, assignmentID int) (*AssignmentStatistics, error) {
	var out AssignmentStatistics
	endpoint := fmt.Sprintf("/api/grading/assignments/%d/statistics", assignmentID)
	if err := c.Get(ctx, endpoint, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssignmentGrades(ctx context.Context, assignmentID int) ([]Grade, error) {
	var out []Grade
	endpoint := fmt.Sprintf("/api/grading/assignments/%d/grades", assignmentID)
	if err := c.Get(ctx, endpoint, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) StudentGrades(ctx context.Context, studentID int) ([]Grade, error) {
	var out []Grade
	endpoint := fmt.Sprintf("/api/grading/students/%d/grades", studentID)
	if err := c.Get(ctx, endpoint, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmissionDetails returns the full per-question grading breakdown
// for one submission. Teacher-only on the backend side.
func (c *Client) SubmissionDetails(ctx context.Context, submissionID int) (*SubmissionDetail, error) {
	var out SubmissionDetail
	if err := c.Get(ctx, fmt.Sprintf("/api/grading/submissions/%d/details", submissionID), &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGrade(ctx context.Context, submissionID int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/grading/submissions/%d/grade", submissionID), nil, nil)
}

// UploadOCR sends a PDF for text extraction.
func (c *Client) UploadOCR(ctx context.Context, fileName string, file io.Reader) (*OCRResult, error) {
	var out OCRResult
	if err := c.UploadFile(ctx, "/api/ocr/upload", "file", fileName, file, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LatestOCRResult(ctx context.Context) (*OCRResult, error) {
	var out OCRResult
	if err := c.Get(ctx, "/api/ocr/result", &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
