package matcher

import (
	"testing"

	"herald/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFactory wraps the real factory and counts how many matchers were
// built, which exposes short-circuit behavior.
type countingFactory struct {
	inner MatcherFactory
	built int
}

func (f *countingFactory) MatcherFor(rule entity.ReactionRule) (MessageMatcher, error) {
	f.built++

	return f.inner.MatcherFor(rule)
}

func TestAnyMatches(t *testing.T) {
	msg := sampleMessage()

	t.Run("empty rule set matches nothing", func(t *testing.T) {
		matched, err := NewAny(NewFactory()).Matches(msg, nil)
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("single positive rule matches", func(t *testing.T) {
		rules := []entity.ReactionRule{{Kind: entity.RuleAlways}}
		matched, err := NewAny(NewFactory()).Matches(msg, rules)
		require.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("all negative rules do not match", func(t *testing.T) {
		rules := []entity.ReactionRule{
			{Kind: entity.RuleNever},
			{Kind: entity.RuleTitleContains, Value: "memory"},
		}
		matched, err := NewAny(NewFactory()).Matches(msg, rules)
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("short-circuits after first positive", func(t *testing.T) {
		counting := &countingFactory{inner: NewFactory()}
		rules := []entity.ReactionRule{
			{Kind: entity.RuleAlways},
			{Kind: entity.RuleNever},
			{Kind: entity.RuleNever},
		}
		matched, err := NewAny(counting).Matches(msg, rules)
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, 1, counting.built)
	})

	t.Run("factory error propagates", func(t *testing.T) {
		rules := []entity.ReactionRule{
			{Kind: entity.RuleNever},
			{Kind: "bogus"},
			{Kind: entity.RuleAlways},
		}
		matched, err := NewAny(NewFactory()).Matches(msg, rules)
		assert.False(t, matched)
		assert.True(t, errors.Is(err, ErrMatcherConfiguration))
	})
}

func TestAllMatches(t *testing.T) {
	msg := sampleMessage()

	t.Run("empty rule set is vacuously true", func(t *testing.T) {
		matched, err := NewAll(NewFactory()).Matches(msg, nil)
		require.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("all positive rules match", func(t *testing.T) {
		rules := []entity.ReactionRule{
			{Kind: entity.RuleAlways},
			{Kind: entity.RuleTitleContains, Value: "disk"},
		}
		matched, err := NewAll(NewFactory()).Matches(msg, rules)
		require.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("short-circuits after first negative", func(t *testing.T) {
		counting := &countingFactory{inner: NewFactory()}
		rules := []entity.ReactionRule{
			{Kind: entity.RuleNever},
			{Kind: entity.RuleAlways},
		}
		matched, err := NewAll(counting).Matches(msg, rules)
		require.NoError(t, err)
		assert.False(t, matched)
		assert.Equal(t, 1, counting.built)
	})
}
