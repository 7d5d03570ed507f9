package service

import (
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func testSchema() *Schema {
	return Object(
		Prop("score", Score()),
		Prop("label", String()),
		Prop("items", ArrayOf(Object(
			Prop("priority", Enum("high", "medium", "low")),
		))),
		Prop("extra", Object(
			Prop("value", Score().OrNull()),
		).OrNull()),
	)
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid",
			input: `{"score":80,"label":"ok","items":[{"priority":"high"}],"extra":{"value":null}}`,
		},
		{
			name:  "nullable object",
			input: `{"score":0,"label":"","items":[],"extra":null}`,
		},
		{
			name:    "missing property",
			input:   `{"score":80,"items":[],"extra":null}`,
			wantErr: true,
		},
		{
			name:    "unknown property",
			input:   `{"score":80,"label":"ok","items":[],"extra":null,"note":"x"}`,
			wantErr: true,
		},
		{
			name:    "enum violation",
			input:   `{"score":80,"label":"ok","items":[{"priority":"urgent"}],"extra":null}`,
			wantErr: true,
		},
		{
			name:    "above maximum",
			input:   `{"score":101,"label":"ok","items":[],"extra":null}`,
			wantErr: true,
		},
		{
			name:    "below minimum",
			input:   `{"score":-1,"label":"ok","items":[],"extra":null}`,
			wantErr: true,
		},
		{
			name:    "fractional integer",
			input:   `{"score":72.5,"label":"ok","items":[],"extra":null}`,
			wantErr: true,
		},
		{
			name:    "non nullable null",
			input:   `{"score":null,"label":"ok","items":[],"extra":null}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			input:   `{"score":"80","label":"ok","items":[],"extra":null}`,
			wantErr: true,
		},
		{
			name:    "array expected",
			input:   `{"score":80,"label":"ok","items":{},"extra":null}`,
			wantErr: true,
		},
	}

	schema := testSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *jsonschema.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestSchemaJSONSchema(t *testing.T) {
	out := testSchema().JSONSchema()

	assert.Equal(t, "object", out["type"])
	assert.Equal(t, false, out["additionalProperties"])
	assert.Equal(t, []string{"score", "label", "items", "extra"}, out["required"])

	props := out["properties"].(map[string]any)
	score := props["score"].(map[string]any)
	assert.Equal(t, "integer", score["type"])
	assert.Equal(t, 0.0, score["minimum"])
	assert.Equal(t, 100.0, score["maximum"])

	extra := props["extra"].(map[string]any)
	assert.Equal(t, []string{"object", "null"}, extra["type"])

	items := props["items"].(map[string]any)["items"].(map[string]any)
	priority := items["properties"].(map[string]any)["priority"].(map[string]any)
	assert.Equal(t, []any{"high", "medium", "low"}, priority["enum"])
}

func TestSchemaGenai(t *testing.T) {
	out := testSchema().Genai()

	assert.Equal(t, genai.TypeObject, out.Type)
	assert.Equal(t, []string{"score", "label", "items", "extra"}, out.Required)
	assert.Equal(t, out.Required, out.PropertyOrdering)
	assert.Equal(t, genai.TypeInteger, out.Properties["score"].Type)
	require.NotNil(t, out.Properties["score"].Maximum)
	assert.Equal(t, 100.0, *out.Properties["score"].Maximum)
	require.NotNil(t, out.Properties["extra"].Nullable)
	assert.True(t, *out.Properties["extra"].Nullable)
	assert.Equal(t, []string{"high", "medium", "low"}, out.Properties["items"].Items.Properties["priority"].Enum)
}
