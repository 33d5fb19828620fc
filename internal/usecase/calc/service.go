package calc

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/numeric"
	"numconv/internal/observability/logging"
	"numconv/internal/observability/metrics"
	"numconv/internal/observability/tracing"
	"numconv/internal/repository"
)

// DefaultHistorySize is the number of results shown per operation.
const DefaultHistorySize = 5

// Result is the outcome of a successful calculation.
type Result struct {
	Operation entity.Operation
	Input     string
	// Output is the result rendered as text ("MCMXCIV", "1994", "Odd", "Prime", "120").
	Output string
	// Value is the typed result: string, int, numeric.Parity, numeric.Primality or uint64.
	Value   any
	Display string
}

// maxAttrInput caps how much raw input is copied into spans and log lines.
const maxAttrInput = 64

// clip shortens s to at most n bytes without splitting a UTF-8 sequence.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Service runs the numeric operations and records successes in Repo.
// Repo may be nil, in which case nothing is recorded.
type Service struct {
	Repo        repository.HistoryRepository
	HistorySize int
	Now         func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) historySize() int {
	if s.HistorySize > 0 {
		return s.HistorySize
	}
	return DefaultHistorySize
}

// IntToRoman converts raw integer text to a Roman numeral.
func (s *Service) IntToRoman(ctx context.Context, raw string) (Result, error) {
	return s.run(ctx, entity.OpIntToRoman, raw, func() (Result, error) {
		roman, err := numeric.ToRomanString(raw)
		if err != nil {
			return Result{}, err
		}
		n, _ := numeric.ParseInteger(raw)
		return Result{
			Output:  roman,
			Value:   roman,
			Display: fmt.Sprintf("%d → %s", n, roman),
		}, nil
	})
}

// RomanToInt converts a Roman numeral to its integer value.
func (s *Service) RomanToInt(ctx context.Context, raw string) (Result, error) {
	return s.run(ctx, entity.OpRomanToInt, raw, func() (Result, error) {
		n, err := numeric.FromRoman(raw)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Output:  strconv.Itoa(n),
			Value:   n,
			Display: fmt.Sprintf("%s → %d", numeric.NormalizeRoman(raw), n),
		}, nil
	})
}

// Parity classifies raw integer text as even or odd.
func (s *Service) Parity(ctx context.Context, raw string) (Result, error) {
	return s.run(ctx, entity.OpParity, raw, func() (Result, error) {
		p, err := numeric.ClassifyParityString(raw)
		if err != nil {
			return Result{}, err
		}
		n, _ := numeric.ParseInteger(raw)
		return Result{
			Output:  p.String(),
			Value:   p,
			Display: fmt.Sprintf("%d is %s", n, p),
		}, nil
	})
}

// Prime tests raw integer text for primality.
func (s *Service) Prime(ctx context.Context, raw string) (Result, error) {
	return s.run(ctx, entity.OpPrime, raw, func() (Result, error) {
		p, err := numeric.CheckPrimeString(raw)
		if err != nil {
			return Result{}, err
		}
		out := "Prime"
		if !p.Prime {
			out = "Not Prime"
		}
		return Result{
			Output:  out,
			Value:   p,
			Display: fmt.Sprintf("%d: %s", p.N, p),
		}, nil
	})
}

// Factorial computes the factorial of raw integer text.
func (s *Service) Factorial(ctx context.Context, raw string) (Result, error) {
	return s.run(ctx, entity.OpFactorial, raw, func() (Result, error) {
		f, err := numeric.FactorialString(raw)
		if err != nil {
			return Result{}, err
		}
		n, _ := numeric.ParseInteger(raw)
		return Result{
			Output:  strconv.FormatUint(f, 10),
			Value:   f,
			Display: fmt.Sprintf("%d! = %s", n, GroupDigits(f)),
		}, nil
	})
}

// Run dispatches to the operation named by op.
func (s *Service) Run(ctx context.Context, op entity.Operation, raw string) (Result, error) {
	switch op {
	case entity.OpIntToRoman:
		return s.IntToRoman(ctx, raw)
	case entity.OpRomanToInt:
		return s.RomanToInt(ctx, raw)
	case entity.OpParity:
		return s.Parity(ctx, raw)
	case entity.OpPrime:
		return s.Prime(ctx, raw)
	case entity.OpFactorial:
		return s.Factorial(ctx, raw)
	}
	return Result{}, &entity.ValidationError{Field: "operation", Message: fmt.Sprintf("unknown operation %q", op)}
}

// History returns the recent results for op, newest first.
func (s *Service) History(ctx context.Context, op entity.Operation) ([]*entity.HistoryEntry, error) {
	if !op.Valid() {
		return nil, &entity.ValidationError{Field: "operation", Message: fmt.Sprintf("unknown operation %q", op)}
	}
	if s.Repo == nil {
		return nil, ErrHistoryDisabled
	}
	entries, err := s.Repo.Recent(ctx, op, s.historySize())
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	return entries, nil
}

// ClearHistory drops every recorded result for op.
func (s *Service) ClearHistory(ctx context.Context, op entity.Operation) error {
	if !op.Valid() {
		return &entity.ValidationError{Field: "operation", Message: fmt.Sprintf("unknown operation %q", op)}
	}
	if s.Repo == nil {
		return ErrHistoryDisabled
	}
	if err := s.Repo.Clear(ctx, op); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Service) run(ctx context.Context, op entity.Operation, raw string, fn func() (Result, error)) (Result, error) {
	ctx, span := tracing.StartSpan(ctx, "calc."+string(op),
		attribute.String("calc.operation", string(op)),
		attribute.String("calc.input", clip(raw, maxAttrInput)),
	)
	defer span.End()

	start := time.Now()
	res, err := fn()
	outcome := metrics.OutcomeOf(err)
	metrics.RecordCalculation(string(op), outcome, time.Since(start))
	span.SetAttributes(attribute.String("calc.outcome", outcome))

	logger := logging.FromContext(ctx)
	if err != nil {
		if outcome == metrics.OutcomeError {
			span.SetStatus(codes.Error, err.Error())
		}
		logger.Debug("calculation rejected",
			slog.String("operation", string(op)),
			slog.String("input", clip(raw, maxAttrInput)),
			slog.String("outcome", outcome),
			slog.String("reason", numeric.Reason(err)))
		return Result{}, err
	}

	res.Operation = op
	res.Input = raw
	logger.Debug("calculation completed",
		slog.String("operation", string(op)),
		slog.String("input", clip(raw, maxAttrInput)),
		slog.String("output", res.Output))

	s.record(ctx, res)
	return res, nil
}

// record appends res to the history. Failures are logged, never returned.
func (s *Service) record(ctx context.Context, res Result) {
	if s.Repo == nil {
		return
	}
	entry := entity.NewHistoryEntry(res.Operation, res.Input, res.Output, res.Display, s.now())
	if err := s.Repo.Append(ctx, entry); err != nil {
		logging.FromContext(ctx).Warn("failed to record history",
			slog.String("operation", string(res.Operation)),
			slog.Any("error", err))
	}
}

// PurgeExpired removes history entries older than retention. A
// non-positive retention keeps everything.
func (s *Service) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	if s.Repo == nil || retention <= 0 {
		return 0, nil
	}
	removed, err := s.Repo.PurgeOlderThan(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("purge history: %w", err)
	}
	metrics.RecordHistoryPurged(removed)
	return removed, nil
}
