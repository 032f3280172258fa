package matcher

import (
	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMatcherConfiguration is returned when a stored rule cannot be resolved
// to an executable matcher (unknown kind or corrupt rule value). Composites
// propagate it rather than swallow it.
var ErrMatcherConfiguration = errors.New("matcher configuration error")

// MatcherFactory maps a stored rule to its executable matcher.
type MatcherFactory interface {
	MatcherFor(rule entity.ReactionRule) (MessageMatcher, error)
}

// Factory is the default MatcherFactory over the closed set of rule kinds.
type Factory struct{}

// NewFactory creates the default matcher factory.
func NewFactory() *Factory {
	return &Factory{}
}

// MatcherFor constructs the matcher for a rule. The switch is exhaustive
// over entity.RuleKind; anything else is a configuration error.
func (f *Factory) MatcherFor(rule entity.ReactionRule) (MessageMatcher, error) {
	switch rule.Kind {
	case entity.RuleAlways:
		return alwaysMatcher{}, nil

	case entity.RuleNever:
		return neverMatcher{}, nil

	case entity.RuleTitleContains:
		return titleContainsMatcher{substring: rule.Value}, nil

	case entity.RuleTitleIs:
		return titleIsMatcher{title: rule.Value}, nil

	case entity.RuleBodyContains:
		return bodyContainsMatcher{substring: rule.Value}, nil

	case entity.RuleHostnameIs:
		return hostnameIsMatcher{hostname: rule.Value}, nil

	case entity.RuleUrgencyIs:
		urgency := entity.Urgency(rule.Value)
		if !urgency.Valid() {
			return nil, errors.Wrapf(ErrMatcherConfiguration, "rule %s: unknown urgency %q", rule.ID, rule.Value)
		}

		return urgencyIsMatcher{urgency: urgency}, nil

	case entity.RuleUrgencyAtLeast:
		urgency := entity.Urgency(rule.Value)
		if !urgency.Valid() {
			return nil, errors.Wrapf(ErrMatcherConfiguration, "rule %s: unknown urgency %q", rule.ID, rule.Value)
		}

		return urgencyAtLeastMatcher{floor: urgency}, nil

	case entity.RuleApplicationIs:
		appID, err := uuid.Parse(rule.Value)
		if err != nil {
			return nil, errors.Wrapf(ErrMatcherConfiguration, "rule %s: invalid application id %q", rule.ID, rule.Value)
		}

		return applicationIsMatcher{appID: appID}, nil

	default:
		return nil, errors.Wrapf(ErrMatcherConfiguration, "rule %s: unknown rule kind %q", rule.ID, rule.Kind)
	}
}
