// Package pipeline seeds form fields from uploaded documents and/or a short
// free-text instruction via one of three extraction strategies.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"

	"metaprompt/internal/document"
	"metaprompt/internal/form"
	"metaprompt/internal/llm"
	"metaprompt/internal/prompts"
	"metaprompt/internal/schema"
)

// Strategy names which extraction request shape was selected.
type Strategy int

const (
	StrategyDocumentOnly Strategy = iota
	StrategyCombined
	StrategyIdeaExpansion
)

func (s Strategy) String() string {
	switch s {
	case StrategyDocumentOnly:
		return "document-only"
	case StrategyCombined:
		return "combined"
	case StrategyIdeaExpansion:
		return "idea-expansion"
	default:
		return "unknown"
	}
}

// Result reports a completed analyze call.
type Result struct {
	Strategy Strategy
	// Fields is the extracted mapping to merge into form state.
	Fields map[string]string
	// FailedFiles lists files that failed to convert when others succeeded.
	// Non-fatal: the extraction still ran on the surviving subset.
	FailedFiles []string
}

// Pipeline runs the aggregation: convert files concurrently, pick a
// strategy, call the generator, validate the result.
type Pipeline struct {
	converter document.Converter
	generator llm.Generator
	logger    *slog.Logger
}

// New creates a pipeline over the given converter and generator.
func New(converter document.Converter, generator llm.Generator, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{converter: converter, generator: generator, logger: logger}
}

type conversion struct {
	file document.File
	text string
	err  error
}

// Analyze runs the full aggregation for the given task type. On success the
// caller applies the result to form state at its event-loop join point (see
// Result.Apply) and owns clearing its pending inputs afterward.
func (p *Pipeline) Analyze(ctx context.Context, task schema.TaskType, files []document.File, instruction string) (*Result, error) {
	instruction = strings.TrimSpace(instruction)
	if len(files) == 0 && instruction == "" {
		return nil, &ValidationError{}
	}

	fields := schema.ExtractionFields(task)

	var (
		documentText string
		failed       []string
	)
	if len(files) > 0 {
		settled := p.convertAll(ctx, files)
		failed = lo.FilterMap(settled, func(c conversion, _ int) (string, bool) {
			return c.file.Name, c.err != nil
		})
		if len(failed) == len(files) {
			return nil, &AllFilesFailedError{Filenames: failed}
		}
		blocks := lo.FilterMap(settled, func(c conversion, _ int) (string, bool) {
			return fmt.Sprintf("--- Document: %s ---\n%s", c.file.Name, c.text), c.err == nil
		})
		documentText = strings.Join(blocks, "\n\n")
	}

	var (
		strategy Strategy
		req      llm.Request
	)
	switch {
	case documentText != "" && instruction != "":
		strategy = StrategyCombined
		req.SystemInstruction = prompts.Combined(fields)
		req.UserPayload = prompts.CombinedPayload(instruction, documentText)
	case documentText != "":
		strategy = StrategyDocumentOnly
		req.SystemInstruction = prompts.DocumentOnly(fields)
		req.UserPayload = documentText
	default:
		strategy = StrategyIdeaExpansion
		req.SystemInstruction = prompts.IdeaExpansion(fields)
		req.UserPayload = instruction
	}
	req.Schema = llm.NewResponseSchema(fields...)

	p.logger.Debug("pipeline.analyze",
		"strategy", strategy.String(), "task", string(task),
		"files", len(files), "failed", len(failed))

	text, err := p.generator.Generate(ctx, &req)
	if err != nil {
		return nil, &ExtractionServiceError{Cause: err}
	}

	extracted, err := decodeExtraction(req.Schema, text)
	if err != nil {
		return nil, &ExtractionServiceError{Cause: err}
	}

	return &Result{Strategy: strategy, Fields: extracted, FailedFiles: failed}, nil
}

// Apply merges the extracted fields into form state, a pure per-field
// overwrite. Call it once the analyze settles, never mid-flight.
func (r *Result) Apply(st *form.State) { st.Merge(r.Fields) }

// convertAll fans the conversions out and joins on an all-settled barrier.
// Results land in an index-addressed slice, so concatenation order is upload
// order regardless of completion order.
func (p *Pipeline) convertAll(ctx context.Context, files []document.File) []conversion {
	settled := make([]conversion, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f document.File) {
			defer wg.Done()
			text, err := p.converter.Convert(ctx, f)
			if err != nil {
				p.logger.Warn("pipeline.convert_failed", "file", f.Name, "error", err)
			}
			settled[i] = conversion{file: f, text: text, err: err}
		}(i, f)
	}
	wg.Wait()
	return settled
}

func decodeExtraction(rs *llm.ResponseSchema, text string) (map[string]string, error) {
	raw := []byte(llm.StripFences(text))
	if err := rs.Validate(raw); err != nil {
		return nil, err
	}
	var extracted map[string]string
	if err := json.Unmarshal(raw, &extracted); err != nil {
		return nil, fmt.Errorf("decode extraction result: %w", err)
	}
	return extracted, nil
}
