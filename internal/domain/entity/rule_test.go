package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

func textDefinition() entity.Definition {
	return entity.Definition{
		Name:  "text",
		Order: 100,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			if source == "" {
				return nil
			}
			return &value.Capture{Groups: []string{source}}
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(value.Text(c.FullMatch()))
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return n.Content
		},
	}
}

func TestNewRuleValid(t *testing.T) {
	result := entity.NewRule(textDefinition())
	require.True(t, result.IsOk())

	rule := result.Unwrap()
	assert.Equal(t, "text", rule.Name())
	order, numeric := rule.Order()
	assert.True(t, numeric)
	assert.Equal(t, 100, order)
	assert.False(t, rule.HasQuality())
}

func TestNewRuleRequiresName(t *testing.T) {
	def := textDefinition()
	def.Name = ""
	result := entity.NewRule(def)
	assert.True(t, result.IsErr())
}

func TestNewRuleRequiresMatchUnlessArray(t *testing.T) {
	def := entity.Definition{Name: "broken", Order: 1}
	result := entity.NewRule(def)
	assert.True(t, result.IsErr())

	arrayDef := entity.Definition{Name: "Array", Order: 0}
	arrayResult := entity.NewRule(arrayDef)
	assert.True(t, arrayResult.IsOk())
	assert.False(t, arrayResult.Unwrap().HasMatch())
}

func TestNewRuleRequiresParseWithMatch(t *testing.T) {
	def := textDefinition()
	def.Parse = nil
	result := entity.NewRule(def)
	assert.True(t, result.IsErr())
}

func TestRuleOrderDetectsNonNumeric(t *testing.T) {
	def := textDefinition()
	def.Order = "not-a-number"
	rule := entity.NewRule(def).Unwrap()

	_, numeric := rule.Order()
	assert.False(t, numeric)
}

func TestRuleQualityDefaultsToZero(t *testing.T) {
	rule := entity.NewRule(textDefinition()).Unwrap()
	assert.Equal(t, float64(0), rule.Quality(nil, nil, ""))
}

func TestRuleDispatchesParseAndRender(t *testing.T) {
	rule := entity.NewRule(textDefinition()).Unwrap()

	capture := &value.Capture{Groups: []string{"hello"}}
	result := rule.Parse(capture, nil, value.NewState())
	require.False(t, result.IsList())
	assert.Equal(t, "hello", result.Node().Content)

	html := rule.RenderHTML(result.Node(), nil, &entity.RenderState{})
	assert.Equal(t, "hello", html)
}

func TestMustNewRulePanicsOnInvalidDefinition(t *testing.T) {
	assert.Panics(t, func() {
		entity.MustNewRule(entity.Definition{Name: ""})
	})
}
