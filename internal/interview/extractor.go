package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"reqwise.app/intake/common/llm"
	"reqwise.app/intake/common/logger"
	"reqwise.app/intake/internal/model"
)

// extractionSchema is the strict structured-output shape offered to backends
// that support JSON schemas. Normalization below stays lenient regardless:
// backends without schema support (and malformed outputs) are coerced
// field by field.
type extractionSchema struct {
	Functional    []string `json:"Functional Requirements"`
	NonFunctional []string `json:"Non-Functional Requirements"`
	Stakeholders  []string `json:"Stakeholders"`
	Risks         []string `json:"Risks & Challenges"`
	UserStories   []string `json:"User Stories"`
	Timeline      string   `json:"Timeline"`
	CostEstimate  string   `json:"Cost Estimate"`
	Constraints   []string `json:"Constraints"`
}

// Extractor reduces a transcript into the canonical Summary. By default,
// extraction failures (provider failure or unparseable output) are absorbed
// into an all-empty Summary rather than propagated; callers detect that via
// Summary.IsEmpty.
type Extractor struct {
	gateway   llm.Completer
	propagate bool
}

type ExtractorOption func(*Extractor)

// WithErrorPropagation makes extraction failures surface as errors, matching
// the driver's behavior, instead of collapsing to an empty summary. The empty
// summary remains the default because the transcript stays intact either way
// and callers already treat emptiness as the failure signal.
func WithErrorPropagation() ExtractorOption {
	return func(e *Extractor) { e.propagate = true }
}

func NewExtractor(gateway llm.Completer, opts ...ExtractorOption) *Extractor {
	e := &Extractor{gateway: gateway}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract calls the gateway in JSON mode and normalizes the model output into
// the canonical Summary shape. With propagation off (default), the returned
// error is always nil and failures produce model.EmptySummary().
func (e *Extractor) Extract(ctx context.Context, transcript []model.ConversationMessage) (model.Summary, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "intake.interview.extractor",
	})

	sc := logger.StartSpan(ctx, "interview.extract")
	defer sc.End()
	ctx = sc.Context()

	text, err := e.gateway.Complete(ctx, llm.Request{
		System:      jsonAssistantSystemPrompt,
		Messages:    []llm.Message{{Role: "user", Content: buildExtractionInput(transcript)}},
		Mode:        llm.ModeJSON,
		SchemaName:  "project_summary",
		Schema:      llm.GenerateSchema[extractionSchema](),
		Temperature: llm.Temp(0.3),
	})
	if err != nil {
		sc.RecordError(err)
		if e.propagate {
			return model.EmptySummary(), fmt.Errorf("summary extraction: %w", err)
		}
		slog.WarnContext(ctx, "summary extraction failed, returning empty summary", "error", err)
		return model.EmptySummary(), nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		sc.RecordError(err)
		if e.propagate {
			return model.EmptySummary(), fmt.Errorf("parsing summary JSON: %w", err)
		}
		slog.WarnContext(ctx, "failed to parse summary JSON, returning empty summary",
			"error", err,
			"output", logger.Truncate(text, 500))
		return model.EmptySummary(), nil
	}

	summary := normalize(raw)
	slog.InfoContext(ctx, "summary extracted",
		"functional", len(summary.Functional),
		"non_functional", len(summary.NonFunctional),
		"stakeholders", len(summary.Stakeholders))

	return summary, nil
}

// buildExtractionInput embeds the transcript as readable context below the
// extraction instructions.
func buildExtractionInput(transcript []model.ConversationMessage) string {
	var b strings.Builder
	b.WriteString(extractionPrompt)
	b.WriteString("\n\nInput Chat:\n")
	for i, msg := range transcript {
		if i > 0 {
			b.WriteString("\n\n")
		}
		speaker := "User"
		if msg.Role == model.MessageRoleModel {
			speaker = "Assistant"
		}
		b.WriteString(speaker)
		b.WriteString(": ")
		b.WriteString(msg.Text())
	}
	return b.String()
}

// normalize coerces the parsed object to the canonical Summary. Every list
// field defaults to empty; Timeline and Cost Estimate survive only as
// strings. Overview and Summary are populated by other flows, never here.
func normalize(raw map[string]any) model.Summary {
	s := model.EmptySummary()
	s.Functional = stringList(raw["Functional Requirements"])
	s.NonFunctional = stringList(raw["Non-Functional Requirements"])
	s.Stakeholders = stakeholderList(raw["Stakeholders"])
	s.UserStories = stringList(raw["User Stories"])
	s.Constraints = stringList(raw["Constraints"])
	s.Risks = stringList(raw["Risks & Challenges"])
	if t, ok := raw["Timeline"].(string); ok {
		s.Timeline = t
	}
	if c, ok := raw["Cost Estimate"].(string); ok {
		s.CostEstimate = c
	}
	return s
}

// stringList coerces a raw value to a list of strings. Non-array values
// become the empty list; non-string elements keep their JSON text.
func stringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, asText(item))
	}
	return out
}

// stakeholderList renders stakeholder entries: strings pass through
// verbatim; {name, role} objects render as "Name (Role)", "Name" or "Role"
// depending on which fields are present; anything else keeps its JSON text.
func stakeholderList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		switch entry := item.(type) {
		case string:
			out = append(out, entry)
		case map[string]any:
			name, _ := entry["name"].(string)
			role, _ := entry["role"].(string)
			switch {
			case name != "" && role != "":
				out = append(out, fmt.Sprintf("%s (%s)", name, role))
			case name != "":
				out = append(out, name)
			case role != "":
				out = append(out, role)
			default:
				out = append(out, asText(entry))
			}
		default:
			out = append(out, asText(item))
		}
	}
	return out
}

func asText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
