package provider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var errNotObject = errors.New("response is not a JSON object")

// StripFence removes a surrounding markdown code fence (```json ... ```).
func StripFence(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseAnalysis strictly parses the model's answer for one entry.
// summary, trigger_pattern and full_text must be present as strings;
// every failure is reported as a domain parse error.
func ParseAnalysis(text string) (*AnalysisResult, error) {
	root, err := parseObject(text)
	if err != nil {
		return nil, domain.NewParseError(err)
	}

	summary, err := requiredString(root, "summary")
	if err != nil {
		return nil, domain.NewParseError(err)
	}
	trigger, err := requiredString(root, "trigger_pattern")
	if err != nil {
		return nil, domain.NewParseError(err)
	}
	fullText, err := requiredString(root, "full_text")
	if err != nil {
		return nil, domain.NewParseError(err)
	}
	actions, err := stringArray(root, "actions")
	if err != nil {
		return nil, domain.NewParseError(err)
	}

	return &AnalysisResult{
		Summary:        summary,
		TriggerPattern: trigger,
		Actions:        actions,
		Hashtags:       looseStrings(root.Get("hashtags")),
		MissionSummary: strings.TrimSpace(root.Get("mission_summary").String()),
		FullText:       fullText,
	}, nil
}

// ParseMonthly parses the model's answer for a month. Only the document
// itself must be a JSON object; missing fields come back blank.
func ParseMonthly(text string) (*MonthlyResult, error) {
	root, err := parseObject(text)
	if err != nil {
		return nil, domain.NewParseError(err)
	}

	return &MonthlyResult{
		OneLineSummary: strings.TrimSpace(root.Get("one_line_summary").String()),
		DetailSummary:  strings.TrimSpace(root.Get("detail_summary").String()),
		EmotionFlow:    strings.TrimSpace(root.Get("emotion_flow").String()),
		Keywords:       DistinctKeywords(looseStrings(root.Get("keywords")), domain.MaxKeywords),
	}, nil
}

// DistinctKeywords keeps the first max distinct non-blank keywords in order.
func DistinctKeywords(keywords []string, max int) []string {
	out := make([]string, 0, max)
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
		if len(out) == max {
			break
		}
	}
	return out
}

func parseObject(text string) (gjson.Result, error) {
	cleaned := StripFence(text)
	if !gjson.Valid(cleaned) {
		return gjson.Result{}, fmt.Errorf("invalid JSON: %.80q", cleaned)
	}
	root := gjson.Parse(cleaned)
	if !root.IsObject() {
		return gjson.Result{}, errNotObject
	}
	return root, nil
}

func requiredString(root gjson.Result, key string) (string, error) {
	v := root.Get(key)
	if !v.Exists() {
		return "", fmt.Errorf("missing field %q", key)
	}
	if v.Type != gjson.String {
		return "", fmt.Errorf("field %q is %s, want string", key, v.Type)
	}
	return v.String(), nil
}

// stringArray reads an optional array whose items must all be strings.
func stringArray(root gjson.Result, key string) ([]string, error) {
	v := root.Get(key)
	if !v.Exists() || !v.IsArray() {
		return nil, nil
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%s[%d] is %s, want string", key, i, item.Type)
		}
		out = append(out, item.String())
	}
	return out, nil
}

// looseStrings reads an optional array, skipping blank and non-string items.
func looseStrings(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	var out []string
	for _, item := range v.Array() {
		if item.Type != gjson.String {
			continue
		}
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
