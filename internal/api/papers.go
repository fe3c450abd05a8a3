package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const papersBase = "/api/v1/question-papers"

// GenerateQuestions asks the backend to draft questions for a topic.
func (c *Client) GenerateQuestions(ctx context.Context, params GenerateParams) ([]Question, error) {
	env, err := c.do(ctx, http.MethodPost, papersBase+"/generate", params)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Questions []Question `json:"questions"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	return payload.Questions, nil
}

func (c *Client) CreateQuestionPaper(ctx context.Context, paper QuestionPaper) (*QuestionPaper, error) {
	env, err := c.do(ctx, http.MethodPost, papersBase, paper)
	if err != nil {
		return nil, err
	}
	return decodePaper(env)
}

func (c *Client) ListQuestionPapers(ctx context.Context) ([]QuestionPaper, error) {
	env, err := c.do(ctx, http.MethodGet, papersBase, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		QuestionPapers []QuestionPaper `json:"questionPapers"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	return payload.QuestionPapers, nil
}

func (c *Client) GetQuestionPaper(ctx context.Context, id string) (*QuestionPaper, error) {
	env, err := c.do(ctx, http.MethodGet, papersBase+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decodePaper(env)
}

func (c *Client) UpdateQuestionPaper(ctx context.Context, id string, paper QuestionPaper) (*QuestionPaper, error) {
	env, err := c.do(ctx, http.MethodPatch, papersBase+"/"+url.PathEscape(id), paper)
	if err != nil {
		return nil, err
	}
	return decodePaper(env)
}

func (c *Client) DeleteQuestionPaper(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, papersBase+"/"+url.PathEscape(id), nil)
	return err
}

// ExportURL returns the download location for a paper's PDF export. The
// URL requires the same bearer credential as any other endpoint.
func (c *Client) ExportURL(id string) string {
	return fmt.Sprintf("%s%s/%s/export", c.baseURL, papersBase, url.PathEscape(id))
}

type solveRequest struct {
	Question string `json:"question"`
	Subject  string `json:"subject,omitempty"`
}

// SolveQuestion asks the backend for a worked answer to one question.
func (c *Client) SolveQuestion(ctx context.Context, question, subject string) (*Solution, error) {
	env, err := c.do(ctx, http.MethodPost, papersBase+"/solve", solveRequest{
		Question: question,
		Subject:  subject,
	})
	if err != nil {
		return nil, err
	}
	var payload struct {
		Solution *Solution `json:"solution"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	if payload.Solution == nil {
		return nil, ErrMalformedResponse
	}
	return payload.Solution, nil
}

type solvePaperRequest struct {
	Questions []string `json:"questions"`
	Subject   string   `json:"subject,omitempty"`
}

// SolvePaper solves a batch of questions in one round trip.
func (c *Client) SolvePaper(ctx context.Context, questions []string, subject string) ([]Solution, error) {
	env, err := c.do(ctx, http.MethodPost, papersBase+"/solve-paper", solvePaperRequest{
		Questions: questions,
		Subject:   subject,
	})
	if err != nil {
		return nil, err
	}
	var payload struct {
		Solutions []Solution `json:"solutions"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	return payload.Solutions, nil
}

func decodePaper(env *envelope) (*QuestionPaper, error) {
	var payload struct {
		QuestionPaper *QuestionPaper `json:"questionPaper"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	if payload.QuestionPaper == nil {
		return nil, ErrMalformedResponse
	}
	return payload.QuestionPaper, nil
}
