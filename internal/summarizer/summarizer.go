package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

const (
	maxTranscriptsPerPrompt = 20
	maxCharsPerTranscript   = 1500
)

// ErrNoAPIKeys is returned when the summarizer has no key to call with.
var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

const digestPrompt = `You are curating an internal knowledge base about procurement, recruiting, HR systems and staffing.
Below are excerpts of video transcripts that were grouped under the category "%s".
Write a concise digest (3 to 5 sentences, plain prose, no headings or lists) describing
the main themes these transcripts cover and what a reader would learn from them.

Transcripts:
---
%s
---`

// Summarize builds a prompt from the category's transcript excerpts and asks
// Gemini for a digest. Rate-limited keys are rotated out.
func (s *implSummarizer) Summarize(ctx context.Context, category string, records []domain.TranscriptRecord) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", ErrNoAPIKeys
	}
	if len(records) == 0 {
		return "", nil
	}

	prompt := buildPrompt(category, records)

	var lastErr error
	for range s.apiKeys {
		key := s.apiKeys[s.currentKey]

		text, err := s.generate(ctx, key, s.model, prompt)
		if err != nil {
			if isRateLimited(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate digest for %s: %w", category, err)
		}

		return strings.TrimSpace(text), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func buildPrompt(category string, records []domain.TranscriptRecord) string {
	if len(records) > maxTranscriptsPerPrompt {
		records = records[:maxTranscriptsPerPrompt]
	}

	var sb strings.Builder
	for _, rec := range records {
		body := rec.Body
		if utf8.RuneCountInString(body) > maxCharsPerTranscript {
			body = string([]rune(body)[:maxCharsPerTranscript])
		}
		fmt.Fprintf(&sb, "[%s]\n%s\n\n", rec.FileName, body)
	}

	return fmt.Sprintf(digestPrompt, category, strings.TrimSpace(sb.String()))
}

// callGemini sends prompt to Gemini and returns the concatenated text parts.
func callGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
