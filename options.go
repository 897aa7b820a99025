package ctxfst

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for graph construction and option validation.
var (
	// ErrNilSymbolTable indicates Build was called without a vocabulary.
	// This is a programming-contract violation, not a recoverable input
	// condition.
	ErrNilSymbolTable = errors.New("ctxfst: symbol table is nil")

	// ErrBadMaxContexts indicates MaxContexts is not positive.
	ErrBadMaxContexts = errors.New("ctxfst: MaxContexts must be positive")

	// ErrBadMaxContextLength indicates MaxContextLength is not positive.
	ErrBadMaxContextLength = errors.New("ctxfst: MaxContextLength must be positive")

	// ErrBadContextScore indicates ContextScore is not positive.
	ErrBadContextScore = errors.New("ctxfst: ContextScore must be positive")
)

// Deterministic defaults, matching the conventional runtime knobs of
// context biasing in CTC decoders.
const (
	// DefaultMaxContexts caps how many phrases one session compiles.
	DefaultMaxContexts = 5000

	// DefaultMaxContextLength caps tokens per phrase.
	DefaultMaxContextLength = 100

	// DefaultContextScore is the per-token bonus weight.
	DefaultContextScore = 3.0
)

// Options configures Build.
//
// MaxContexts      – cap on the number of compiled phrases; phrases past
// the cap are ignored entirely.
// MaxContextLength – cap on tokens per phrase; longer phrases are skipped
// whole and do not consume the MaxContexts budget.
// ContextScore     – per-token bonus weight, used both for match arcs and
// (negated, scaled by position) for escape arcs.
// Logger           – receives build notices (skipped and truncated
// phrases); nil selects slog.Default().
type Options struct {
	MaxContexts      int     `yaml:"max_contexts"`
	MaxContextLength int     `yaml:"max_context_length"`
	ContextScore     float64 `yaml:"context_score"`

	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns the deterministic defaults.
func DefaultOptions() Options {
	return Options{
		MaxContexts:      DefaultMaxContexts,
		MaxContextLength: DefaultMaxContextLength,
		ContextScore:     DefaultContextScore,
	}
}

// validate reports the first violated option constraint.
func (o *Options) validate() error {
	if o.MaxContexts <= 0 {
		return ErrBadMaxContexts
	}
	if o.MaxContextLength <= 0 {
		return ErrBadMaxContextLength
	}
	if o.ContextScore <= 0 {
		return ErrBadContextScore
	}

	return nil
}

// logger resolves the effective build logger.
func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// LoadOptions decodes YAML from r over the defaults and validates the
// result. Unknown keys are ignored; absent keys keep their defaults.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	data, err := io.ReadAll(r)
	if err != nil {
		return opts, fmt.Errorf("ctxfst: read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("ctxfst: parse options: %w", err)
	}
	if err := opts.validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

// LoadOptionsFile reads and decodes the YAML options file at path.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("ctxfst: open options file: %w", err)
	}
	defer f.Close()

	return LoadOptions(f)
}
