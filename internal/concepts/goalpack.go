package concepts

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// GoalPack is an externally supplied learning goal: a named set of required
// concept codes layered over the curriculum.
type GoalPack struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Concepts []string `json:"concepts"`
}

// goalPackSchemaDef is the JSON schema every goal pack document must satisfy.
var goalPackSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{
			"type": "string",
		},
		"concepts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
	"required":             []any{"id", "concepts"},
	"additionalProperties": false,
}

var (
	goalPackSchemaOnce sync.Once
	goalPackSchema     *jsonschema.Schema
	goalPackSchemaErr  error
)

func compiledGoalPackSchema() (*jsonschema.Schema, error) {
	goalPackSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(goalPackSchemaDef)
		if err != nil {
			goalPackSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			goalPackSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://goal-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			goalPackSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		goalPackSchema, goalPackSchemaErr = c.Compile(schemaURL)
	})
	return goalPackSchema, goalPackSchemaErr
}

// ParseGoalPack validates raw JSON against the goal pack schema and decodes
// it. Malformed documents fail loudly; nothing is registered on error.
func ParseGoalPack(raw []byte) (GoalPack, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return GoalPack{}, fmt.Errorf("goal pack: invalid JSON: %w", err)
	}

	sch, err := compiledGoalPackSchema()
	if err != nil {
		return GoalPack{}, fmt.Errorf("goal pack: compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return GoalPack{}, fmt.Errorf("goal pack: schema validation failed: %w", err)
	}

	var pack GoalPack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return GoalPack{}, fmt.Errorf("goal pack: decode: %w", err)
	}
	return pack, nil
}

// LoadGoalPackFile reads, validates, and registers a goal pack from disk.
func LoadGoalPackFile(cat *SeedCatalog, path string) (GoalPack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return GoalPack{}, fmt.Errorf("read goal pack: %w", err)
	}
	pack, err := ParseGoalPack(raw)
	if err != nil {
		return GoalPack{}, err
	}
	if err := cat.RegisterGoalPack(pack); err != nil {
		return GoalPack{}, err
	}
	return pack, nil
}
