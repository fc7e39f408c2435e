// Package prompts holds the externalized model prompt templates, embedded at
// compile time and rendered through typed argument structs.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed insights.json
var promptFiles embed.FS

// insightTemplates mirrors the keys of insights.json.
type insightTemplates struct {
	System string `json:"system"`
	User   string `json:"user"`
}

var (
	loadOnce sync.Once
	tmpl     insightTemplates
	loadErr  error
)

// InsightArgs fills the placeholders of the insight user prompt. Every field
// is a pre-rendered string; numeric values are formatted by the caller.
type InsightArgs struct {
	JobTitle        string
	YearsExperience string
	ManagementLevel string
	TechnicalSkills string
	OccupationType  string
	Industry        string
	RiskLevel       string
	OverallScore    string
	TopOccupations  string
}

// Insights returns the system prompt and the user prompt rendered from args.
// Placeholders without a value render as empty strings, never as literal
// {{.Key}} markers.
func Insights(args InsightArgs) (system, user string, err error) {
	loadOnce.Do(func() {
		data, readErr := promptFiles.ReadFile("insights.json")
		if readErr != nil {
			loadErr = fmt.Errorf("failed to read prompt file insights.json: %w", readErr)
			return
		}
		if parseErr := json.Unmarshal(data, &tmpl); parseErr != nil {
			loadErr = fmt.Errorf("failed to parse prompt file insights.json: %w", parseErr)
		}
	})
	if loadErr != nil {
		return "", "", loadErr
	}

	r := strings.NewReplacer(
		"{{.JobTitle}}", args.JobTitle,
		"{{.YearsExperience}}", args.YearsExperience,
		"{{.ManagementLevel}}", args.ManagementLevel,
		"{{.TechnicalSkills}}", args.TechnicalSkills,
		"{{.OccupationType}}", args.OccupationType,
		"{{.Industry}}", args.Industry,
		"{{.RiskLevel}}", args.RiskLevel,
		"{{.OverallScore}}", args.OverallScore,
		"{{.TopOccupations}}", args.TopOccupations,
	)
	return tmpl.System, r.Replace(tmpl.User), nil
}

// MustInsights is Insights for call sites where the embedded templates are
// required to be present; a missing or malformed template file is a build
// defect, not a runtime condition.
func MustInsights(args InsightArgs) (system, user string) {
	system, user, err := Insights(args)
	if err != nil {
		panic(fmt.Sprintf("failed to load insight prompts: %v", err))
	}
	return system, user
}
