// Package content handles user-authored text: blank detection for
// comment validation and safe HTML rendering for notification emails.
package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	// IsBlank reports whether the text is empty after stripping markup
	// tags and whitespace. "<p>   </p>" is blank; "<p>ok</p>" is not.
	IsBlank(text string) bool
	// Sanitize strips unsafe markup from user HTML so it can be
	// inlined into email bodies.
	Sanitize(htmlContent string) string
	// RenderMarkdown converts markdown to sanitized HTML.
	RenderMarkdown(markdown string) (string, error)
}

type serviceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strip  *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &serviceImpl{
		md:     md,
		policy: bluemonday.UGCPolicy(),
		strip:  bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) IsBlank(text string) bool {
	stripped := s.strip.Sanitize(text)
	return strings.TrimSpace(stripped) == ""
}

func (s *serviceImpl) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *serviceImpl) RenderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}
