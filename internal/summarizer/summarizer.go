package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gistmaker/internal/domain"
	"gistmaker/internal/inference"
	"gistmaker/internal/prompt"
)

const (
	temperature   = 0.3
	topP          = 0.8
	repeatPenalty = 1.1
)

// Cache stores finished summaries by request key.
type Cache interface {
	GetSummary(ctx context.Context, key string, now time.Time) (string, bool, error)
	PutSummary(ctx context.Context, key string, summary string, expiresAt time.Time, now time.Time) error
}

type Options struct {
	// Cache is optional. A nil cache sends every request to the engine.
	Cache    Cache
	CacheTTL time.Duration
	Now      func() time.Time
}

// Summarizer builds prompts and runs them through the engine it was given.
type Summarizer struct {
	engine   inference.Engine
	cache    Cache
	cacheTTL time.Duration
	now      func() time.Time
	log      *slog.Logger
}

func New(engine inference.Engine, opts Options, log *slog.Logger) *Summarizer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Summarizer{
		engine:   engine,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		now:      now,
		log:      log,
	}
}

// Summarize produces a multi-paragraph summary of req.Text. A non-empty
// req.Source is acknowledged in the prompt and appended as the last line.
func (s *Summarizer) Summarize(ctx context.Context, req domain.SummaryRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultMaxTokens
	}

	style := domain.ParseStyle(string(req.Style))
	source := strings.TrimSpace(req.Source)
	msgs := prompt.BuildMessages(req.Text, style, source)

	cacheKey := summaryCacheKey(style, source, maxTokens, req.Text)
	if summary, ok := s.cachedSummary(ctx, cacheKey); ok {
		return summary, nil
	}

	completion, err := s.engine.CreateChatCompletion(ctx, []inference.Message{
		{Role: inference.RoleSystem, Content: msgs.System},
		{Role: inference.RoleUser, Content: msgs.User},
	}, inference.Params{
		MaxTokens:     maxTokens,
		Temperature:   temperature,
		TopP:          topP,
		RepeatPenalty: repeatPenalty,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	summary := strings.TrimSpace(completion.Text)
	if summary == "" {
		return "", domain.ErrEmptyCompletion
	}

	if source != "" {
		summary += "\n\n**Source:** " + source
	}

	s.storeSummary(ctx, cacheKey, summary)

	return summary, nil
}

func (s *Summarizer) cachedSummary(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	summary, ok, err := s.cache.GetSummary(ctx, key, s.now())
	if err != nil {
		s.log.WarnContext(ctx, "Failed to read summary cache",
			"error", err,
			"cacheKey", key)

		return "", false
	}

	return summary, ok
}

func (s *Summarizer) storeSummary(ctx context.Context, key string, summary string) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	now := s.now()
	if err := s.cache.PutSummary(ctx, key, summary, now.Add(s.cacheTTL), now); err != nil {
		s.log.WarnContext(ctx, "Failed to write summary cache",
			"error", err,
			"cacheKey", key,
			"summaryLen", len(summary))
	}
}

func summaryCacheKey(style domain.Style, source string, maxTokens int64, text string) string {
	h := sha256.New()
	for _, part := range []string{
		string(style),
		source,
		strconv.FormatInt(maxTokens, 10),
		text,
	} {
		h.Write([]byte(strconv.Itoa(len(part))))
		h.Write([]byte{0})
		h.Write([]byte(part))
	}

	return hex.EncodeToString(h.Sum(nil))
}
