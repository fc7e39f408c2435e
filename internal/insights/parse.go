package insights

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Shaolin23/adence-ai/internal/llm"
	"github.com/Shaolin23/adence-ai/internal/types"
)

//go:embed schema/insights.json
var insightsSchema string

// ParseFailure reports that every parsing layer failed on a response; the
// caller is expected to fall back to fully synthesized insights.
type ParseFailure struct {
	Cause error
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("insights response unparseable at every layer: %v", e.Cause)
}

func (e *ParseFailure) Unwrap() error {
	return e.Cause
}

// parseInsights runs the layered parser over a raw model response:
// strict parse first, then fence/trailing-comma repair, then regex-based
// partial extraction. The returned Source records which layer succeeded so
// callers can distinguish degraded from faithful output.
func parseInsights(raw string) (types.AIInsights, error) {
	if out, err := parseStrict(raw); err == nil {
		out.Source = types.InsightSourceModel
		return out, nil
	}

	repaired := llm.StripTrailingCommas(llm.CleanJSONBlock(raw))
	out, repairedErr := parseStrict(repaired)
	if repairedErr == nil {
		out.Source = types.InsightSourceRepaired
		return out, nil
	}

	if out, ok := parsePartial(repaired); ok {
		out.Source = types.InsightSourcePartial
		return out, nil
	}

	return types.AIInsights{}, &ParseFailure{Cause: repairedErr}
}

// parseStrict validates the document against the embedded schema before
// unmarshaling, so structurally wrong model output never reaches callers as
// a faithful result.
func parseStrict(doc string) (types.AIInsights, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(insightsSchema),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		return types.AIInsights{}, fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		return types.AIInsights{}, fmt.Errorf("response does not match insights schema: %v", result.Errors())
	}

	var out types.AIInsights
	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		return types.AIInsights{}, fmt.Errorf("failed to unmarshal insights: %w", err)
	}
	return out, nil
}

var (
	summaryPattern   = regexp.MustCompile(`"summary"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	strengthsPattern = regexp.MustCompile(`(?s)"strengths"\s*:\s*\[(.*?)\]`)
	citationsPattern = regexp.MustCompile(`(?s)"citations"\s*:\s*\[(.*?)\]`)
	quotedPattern    = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// parsePartial salvages individual fields from a structurally broken
// response. Succeeds when at least a summary or one strength is recoverable.
func parsePartial(doc string) (types.AIInsights, bool) {
	var out types.AIInsights

	if m := summaryPattern.FindStringSubmatch(doc); m != nil {
		out.Summary = unescape(m[1])
	}
	out.Strengths = extractStringArray(strengthsPattern, doc)
	out.Citations = extractStringArray(citationsPattern, doc)

	if out.Summary == "" && len(out.Strengths) == 0 {
		return types.AIInsights{}, false
	}
	return out, true
}

func extractStringArray(arrayPattern *regexp.Regexp, doc string) []string {
	m := arrayPattern.FindStringSubmatch(doc)
	if m == nil {
		return nil
	}
	var items []string
	for _, q := range quotedPattern.FindAllStringSubmatch(m[1], -1) {
		if s := unescape(q[1]); s != "" {
			items = append(items, s)
		}
	}
	return items
}

func unescape(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return s
	}
	return out
}
