package generate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"jobapp-backend/internal/llm"
	"jobapp-backend/internal/shared/telemetry"
)

const (
	maxAttempts = 3
	baseDelay   = time.Second
)

var (
	// ErrMissingField means the template references a placeholder the caller
	// did not supply. This is a wiring bug, never retried.
	ErrMissingField = errors.New("template field missing")
	// ErrExhausted means the generation client failed or returned empty
	// output on every attempt.
	ErrExhausted = errors.New("generation failed, try again later")
)

// Template is a parameterized prompt with {name} placeholders.
type Template struct {
	Name string
	Text string
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Render fills every placeholder from fields. All referenced placeholders
// must be present.
func (t Template) Render(fields map[string]string) (string, error) {
	var missing []string
	out := placeholderPattern.ReplaceAllStringFunc(t.Text, func(match string) string {
		name := strings.Trim(match, "{}")
		val, ok := fields[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return val
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: template %s needs %s", ErrMissingField, t.Name, strings.Join(missing, ", "))
	}
	return out, nil
}

// Pipeline formats prompts and calls the generation client with bounded
// retries. Sleep is injectable so tests run without real delays.
type Pipeline struct {
	Client llm.Client
	Sleep  func(time.Duration)
}

// NewPipeline constructs a Pipeline with real sleeping.
func NewPipeline(client llm.Client) *Pipeline {
	return &Pipeline{Client: client, Sleep: time.Sleep}
}

// Generate renders the template and invokes the client, retrying failures and
// empty output up to 3 total attempts with doubling backoff. A missing
// placeholder fails fast with no client calls. Successful output is returned
// verbatim.
func (p *Pipeline) Generate(ctx context.Context, tmpl Template, fields map[string]string) (string, error) {
	if p == nil || p.Client == nil {
		return "", errors.New("generation pipeline not configured")
	}

	prompt, err := tmpl.Render(fields)
	if err != nil {
		return "", err
	}

	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	delay := baseDelay
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			sleep(delay)
			delay *= 2
		}

		output, err := p.Client.Complete(ctx, prompt)
		if err == nil && strings.TrimSpace(output) != "" {
			return output, nil
		}
		if err == nil {
			err = errors.New("empty output")
		}
		lastErr = err
		telemetry.Warn("generate.attempt_failed", map[string]any{
			"template": tmpl.Name,
			"attempt":  attempt,
			"error":    err.Error(),
		})
	}

	return "", fmt.Errorf("%w: %s: %v", ErrExhausted, tmpl.Name, lastErr)
}
