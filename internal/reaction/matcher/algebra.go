package matcher

import (
	"herald/internal/domain/entity"
)

// Algorithm composes rule evaluation over a set of stored rules.
type Algorithm interface {
	Matches(msg *entity.Message, rules []entity.ReactionRule) (bool, error)
}

// Any is the OR composite: true when at least one rule matches. An empty
// rule set matches nothing (no rule present means nothing requested a match).
type Any struct {
	factory MatcherFactory
}

// NewAny creates an OR composite over the given factory.
func NewAny(factory MatcherFactory) *Any {
	return &Any{factory: factory}
}

// Matches evaluates the disjunction, short-circuiting on the first positive
// match. A factory error aborts evaluation and propagates.
func (a *Any) Matches(msg *entity.Message, rules []entity.ReactionRule) (bool, error) {
	for _, rule := range rules {
		m, err := a.factory.MatcherFor(rule)
		if err != nil {
			return false, err
		}
		if m.Matches(msg) {
			return true, nil
		}
	}

	return false, nil
}

// All is the AND composite: true when every rule matches. An empty rule set
// is vacuously true.
type All struct {
	factory MatcherFactory
}

// NewAll creates an AND composite over the given factory.
func NewAll(factory MatcherFactory) *All {
	return &All{factory: factory}
}

// Matches evaluates the conjunction, short-circuiting on the first negative.
func (a *All) Matches(msg *entity.Message, rules []entity.ReactionRule) (bool, error) {
	for _, rule := range rules {
		m, err := a.factory.MatcherFor(rule)
		if err != nil {
			return false, err
		}
		if !m.Matches(msg) {
			return false, nil
		}
	}

	return true, nil
}
