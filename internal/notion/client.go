// Package notion proxies task reads and writes against a Notion database,
// flattening page properties into the application's task shape.
package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
	apperrors "github.com/goaltrack/goaltrack/internal/errors"
	"github.com/goaltrack/goaltrack/internal/utils"
)

const notionVersion = "2022-06-28"

type Client struct {
	baseUrl    string
	token      string
	databaseId string
	httpClient *http.Client
}

func NewClient(token, databaseId string) (*Client, error) {
	if token == "" || databaseId == "" {
		return nil, fmt.Errorf("notion credentials not configured")
	}
	return &Client{
		baseUrl:    "https://api.notion.com/v1",
		token:      token,
		databaseId: databaseId,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Client) do(method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request (notion): %w", err)
		}
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, c.baseUrl+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request (notion): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", notionVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.UpstreamSyncError{Service: "notion", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (notion): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var notionErr notionError
		if err := json.Unmarshal(body, &notionErr); err == nil && notionErr.Message != "" {
			return nil, &apperrors.UpstreamSyncError{Service: "notion", Status: resp.StatusCode, Message: notionErr.Message}
		}
		return nil, &apperrors.UpstreamSyncError{Service: "notion", Status: resp.StatusCode, Message: string(body)}
	}

	return body, nil
}

// Ping verifies connectivity and credentials by fetching the database itself.
func (c *Client) Ping() error {
	_, err := c.do("GET", "/databases/"+c.databaseId, nil)
	return err
}

// ListTasks queries every page in the database and flattens its properties,
// substituting defaults for anything absent.
func (c *Client) ListTasks() ([]Task, error) {
	if err := c.Ping(); err != nil {
		return nil, err
	}

	body, err := c.do("POST", "/databases/"+c.databaseId+"/query", map[string]any{})
	if err != nil {
		return nil, err
	}

	var queryResp queryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, fmt.Errorf("parse query response (notion): %w", err)
	}

	tasks := make([]Task, 0, len(queryResp.Results))
	for _, p := range queryResp.Results {
		if p.Properties == nil {
			continue
		}
		tasks = append(tasks, mapPage(p))
	}
	return tasks, nil
}

func mapPage(p page) Task {
	today := utils.Today()

	title := plainText(p.Properties["Title"].Title)
	if title == "" {
		title = plainText(p.Properties["Name"].Title)
	}
	if title == "" {
		title = "Untitled"
	}

	date := dateStart(p.Properties["Date"].Date)
	if date == "" {
		date = today
	}

	taskTime := plainText(p.Properties["Time"].RichText)
	if taskTime == "" {
		taskTime = constants.DefaultNotionTime
	}

	priority := selectName(p.Properties["Priority"].Select)
	if priority == "" {
		priority = string(constants.DefaultNotionPriority)
	}

	status := selectName(p.Properties["Status"].Select)
	if status == "" {
		status = string(constants.DefaultNotionStatus)
	}

	// Deadline is written back as rich text, so accept either shape.
	deadline := dateStart(p.Properties["Deadline"].Date)
	if deadline == "" {
		deadline = plainText(p.Properties["Deadline"].RichText)
	}
	if deadline == "" {
		deadline = today
	}

	return Task{
		ID:          p.Id,
		Title:       title,
		Description: plainText(p.Properties["Description"].RichText),
		Date:        date,
		Time:        taskTime,
		Priority:    strings.ToLower(priority),
		Status:      strings.ToLower(status),
		Deadline:    deadline,
	}
}

// CreateTask inserts a new page into the database.
func (c *Client) CreateTask(task Task) error {
	payload := map[string]any{
		"parent": map[string]any{"database_id": c.databaseId},
		"properties": map[string]any{
			"Title":       titleProp(task.Title),
			"Description": richTextProp(task.Description),
			"Date":        dateProp(task.Date),
			"Time":        richTextProp(task.Time),
			"Priority":    selectProp(capitalize(task.Priority)),
			"Status":      selectProp(capitalize(task.Status)),
			"Deadline":    richTextProp(task.Deadline),
		},
	}

	_, err := c.do("POST", "/pages", payload)
	return err
}

// UpdateTask patches only the fields present on the update.
func (c *Client) UpdateTask(update TaskUpdate) error {
	props := map[string]any{}
	if update.Title != "" {
		props["Title"] = titleProp(update.Title)
	}
	if update.Description != nil {
		props["Description"] = richTextProp(*update.Description)
	}
	if update.Date != "" {
		props["Date"] = dateProp(update.Date)
	}
	if update.Time != "" {
		props["Time"] = richTextProp(update.Time)
	}
	if update.Priority != "" {
		props["Priority"] = selectProp(capitalize(update.Priority))
	}
	if update.Status != "" {
		props["Status"] = selectProp(capitalize(update.Status))
	}
	if update.Deadline != "" {
		props["Deadline"] = richTextProp(update.Deadline)
	}

	_, err := c.do("PATCH", "/pages/"+update.ID, map[string]any{"properties": props})
	return err
}

// ArchiveTask archives the page; Notion has no true delete.
func (c *Client) ArchiveTask(id string) error {
	_, err := c.do("PATCH", "/pages/"+id, map[string]any{"archived": true})
	return err
}

func plainText(parts []richText) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[0].PlainText
}

func dateStart(d *dateValue) string {
	if d == nil {
		return ""
	}
	return d.Start
}

func selectName(s *selectValue) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func titleProp(s string) map[string]any {
	return map[string]any{"title": []any{map[string]any{"text": map[string]any{"content": s}}}}
}

func richTextProp(s string) map[string]any {
	return map[string]any{"rich_text": []any{map[string]any{"text": map[string]any{"content": s}}}}
}

func dateProp(s string) map[string]any {
	return map[string]any{"date": map[string]any{"start": s}}
}

func selectProp(s string) map[string]any {
	return map[string]any{"select": map[string]any{"name": s}}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
