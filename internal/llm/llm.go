package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Client summarizes repositories with any OpenAI-compatible chat endpoint.
type Client struct {
	client *openai.Client
	model  string
}

func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

const systemPrompt = `You describe GitHub repositories to someone browsing a developer's profile. Given a repository's metadata, produce a JSON object with:

1. "summary": One or two sentences on what the repository is and who would use it.
2. "categories": An array of 1-3 categories from this list:
   Web, CLI, Library/SDK, Infrastructure, Data, AI/ML, Mobile, Game, Documentation, Config/Dotfiles, Learning, Other

Return ONLY valid JSON. No markdown, no code fences.`

// Summarize asks the model for a short summary of repo.
func (c *Client) Summarize(ctx context.Context, repo models.Repository) (*models.SummaryResult, error) {
	name := repo.FullName
	if name == "" {
		name = repo.Name
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: describe(repo)},
		},
		// Not every compatible server supports json_object mode.
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM call for %s: %w", name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned for %s", name)
	}

	content := stripCodeFences(resp.Choices[0].Message.Content)
	logrus.WithFields(logrus.Fields{"repo": name, "tokens": resp.Usage.TotalTokens}).Debug("summary received")

	var result models.SummaryResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("parsing LLM response for %s: %w\nraw: %s", name, err, content)
	}
	return &result, nil
}

func describe(repo models.Repository) string {
	name := repo.FullName
	if name == "" {
		name = repo.Name
	}
	parts := []string{fmt.Sprintf("Repository: %s", name)}
	if repo.Description != nil && *repo.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", *repo.Description))
	}
	if repo.Language != nil && *repo.Language != "" {
		parts = append(parts, fmt.Sprintf("Language: %s", *repo.Language))
	}
	parts = append(parts, fmt.Sprintf("Stars: %d, forks: %d, open issues: %d",
		repo.StargazersCount, repo.ForksCount, repo.OpenIssuesCount))
	if repo.Fork {
		parts = append(parts, "This repository is a fork.")
	}
	return strings.Join(parts, "\n")
}

// stripCodeFences removes markdown code fences that some models wrap around JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i != -1 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i != -1 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
