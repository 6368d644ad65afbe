package experiment

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/visionforge-labs/visionforge/internal/configs/core"
)

// Restrictions take the form "<dotted.path> != None". The path is resolved
// over the marshaled document (so it follows yaml field tags), and the
// predicate holds when the path exists and its value is not null.
const restrictionSuffix = " != None"

// CheckRestrictions evaluates every restriction attached to the config
// against the config's own marshaled document. It returns the first failure.
func CheckRestrictions(cfg *core.ExperimentConfig) error {
	if len(cfg.Restrictions) == 0 {
		return nil
	}

	doc, err := documentOf(cfg)
	if err != nil {
		return err
	}

	return checkAgainst(doc, cfg.Restrictions)
}

// CheckDocumentRestrictions evaluates the restrictions listed inside a raw
// experiment document against the document itself.
func CheckDocumentRestrictions(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	var restrictions []string
	if raw, ok := doc["restrictions"].([]any); ok {
		for _, r := range raw {
			expr, ok := r.(string)
			if !ok {
				return fmt.Errorf("malformed restriction %v: not a string", r)
			}
			restrictions = append(restrictions, expr)
		}
	}
	return checkAgainst(doc, restrictions)
}

func checkAgainst(doc map[string]any, restrictions []string) error {
	for _, restriction := range restrictions {
		path, err := parseRestriction(restriction)
		if err != nil {
			return err
		}
		value, found := resolvePath(doc, path)
		if !found {
			return fmt.Errorf("restriction %q: path %s not present", restriction, path)
		}
		if value == nil {
			return fmt.Errorf("restriction %q: path %s is null", restriction, path)
		}
	}
	return nil
}

// documentOf converts a config to its generic document form by marshaling
// through YAML, so paths address fields by tag name.
func documentOf(cfg *core.ExperimentConfig) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding config document: %w", err)
	}
	return doc, nil
}

// parseRestriction extracts the dotted path from a restriction expression.
func parseRestriction(expr string) (string, error) {
	path, ok := strings.CutSuffix(expr, restrictionSuffix)
	if !ok || path == "" || strings.ContainsAny(path, " \t") {
		return "", fmt.Errorf("malformed restriction %q: want \"<path>%s\"", expr, restrictionSuffix)
	}
	return path, nil
}

// resolvePath walks a dotted path through nested maps. The second return is
// false when any segment is missing or a non-map is traversed into.
func resolvePath(doc map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	var current any = doc
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
