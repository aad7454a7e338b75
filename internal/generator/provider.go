package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"ai-website-builder/internal/domain"
	"ai-website-builder/internal/logger"
	"ai-website-builder/internal/metrics"
)

// MinSuggestionLength is the shortest suggestion accepted from the model.
// Shorter replies are treated as failures.
const MinSuggestionLength = 300

// Generation outcomes recorded in metrics.
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeEmpty       = "empty"
	OutcomeDegenerate  = "degenerate"
	OutcomeRateLimited = "rate_limited"
)

var errEmptyCompletion = errors.New("empty completion")

// Provider executes prompts against a Completer and never fails: every error or
// unusable reply is replaced by deterministic fallback content for the intent.
type Provider struct {
	completer Completer
	limiter   *rate.Limiter
	timeout   time.Duration
}

// Option configures a Provider.
type Option func(*Provider)

// WithRateLimit throttles outbound completions to rps requests per second.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(p *Provider) {
		if rps <= 0 {
			p.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithTimeout bounds each completion call. Zero means no bound beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		p.timeout = d
	}
}

// NewProvider creates a Provider around the given Completer.
func NewProvider(completer Completer, opts ...Option) *Provider {
	p := &Provider{completer: completer}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Suggest returns long-form suggestions for a website idea.
func (p *Provider) Suggest(ctx context.Context, name, description string) string {
	timer := metrics.NewTimer()
	text, outcome := p.complete(ctx, BuildSuggestionPrompt(name, description), IntentSuggestion)
	if outcome == OutcomeSuccess && utf8.RuneCountInString(text) < MinSuggestionLength {
		logger.WarnContext(ctx, "Suggestion below minimum length, using fallback",
			slog.Int("length", utf8.RuneCountInString(text)),
			slog.Int("min_length", MinSuggestionLength))
		outcome = OutcomeDegenerate
	}
	p.record(IntentSuggestion, outcome, timer)
	if outcome != OutcomeSuccess {
		return SuggestionFallback(name, description)
	}
	return text
}

// GenerateSection returns markup for the named section given the sections generated so far.
func (p *Provider) GenerateSection(ctx context.Context, site SiteInfo, sectionName string, previous []domain.Section) string {
	timer := metrics.NewTimer()
	text, outcome := p.complete(ctx, BuildSectionPrompt(site, sectionName, previous), IntentSection)
	p.record(IntentSection, outcome, timer)
	if outcome != OutcomeSuccess {
		return SectionFallback(sectionName)
	}
	return text
}

// Chat answers a visitor message using the website context.
func (p *Provider) Chat(ctx context.Context, site SiteInfo, sections []domain.Section, message string) string {
	timer := metrics.NewTimer()
	text, outcome := p.complete(ctx, BuildChatPrompt(site, sections, message), IntentChat)
	p.record(IntentChat, outcome, timer)
	if outcome != OutcomeSuccess {
		return ChatFallback
	}
	return text
}

func (p *Provider) complete(ctx context.Context, prompt string, intent Intent) (string, string) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			logger.WarnContext(ctx, "Generation rate limit wait failed",
				slog.String("intent", string(intent)),
				slog.String("error", err.Error()))
			return "", OutcomeRateLimited
		}
	}

	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	text, err := p.completer.Complete(callCtx, prompt, intent)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyCompletion
	}
	if err != nil {
		logger.ErrorContext(ctx, "Generation failed, using fallback",
			slog.String("intent", string(intent)),
			slog.String("error", err.Error()))
		if errors.Is(err, errEmptyCompletion) {
			return "", OutcomeEmpty
		}
		return "", OutcomeError
	}

	return text, OutcomeSuccess
}

func (p *Provider) record(intent Intent, outcome string, timer *metrics.Timer) {
	metrics.ObserveGeneration(string(intent), outcome, timer.Elapsed().Seconds())
}
