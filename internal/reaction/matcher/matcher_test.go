package matcher

import (
	"testing"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage() *entity.Message {
	return &entity.Message{
		ID:            uuid.New(),
		ApplicationID: uuid.New(),
		Title:         "disk space low",
		Body:          "host fs usage above 90 percent",
		Urgency:       entity.UrgencyMedium,
		Hostname:      "db-01",
	}
}

func TestFactoryMatcherFor(t *testing.T) {
	factory := NewFactory()
	msg := sampleMessage()

	tests := []struct {
		name string
		rule entity.ReactionRule
		want bool
	}{
		{name: "always", rule: entity.ReactionRule{Kind: entity.RuleAlways}, want: true},
		{name: "never", rule: entity.ReactionRule{Kind: entity.RuleNever}, want: false},
		{name: "title contains hit", rule: entity.ReactionRule{Kind: entity.RuleTitleContains, Value: "disk"}, want: true},
		{name: "title contains miss", rule: entity.ReactionRule{Kind: entity.RuleTitleContains, Value: "memory"}, want: false},
		{name: "title is exact", rule: entity.ReactionRule{Kind: entity.RuleTitleIs, Value: "disk space low"}, want: true},
		{name: "title is partial does not match", rule: entity.ReactionRule{Kind: entity.RuleTitleIs, Value: "disk"}, want: false},
		{name: "body contains", rule: entity.ReactionRule{Kind: entity.RuleBodyContains, Value: "90 percent"}, want: true},
		{name: "hostname is", rule: entity.ReactionRule{Kind: entity.RuleHostnameIs, Value: "db-01"}, want: true},
		{name: "hostname differs", rule: entity.ReactionRule{Kind: entity.RuleHostnameIs, Value: "db-02"}, want: false},
		{name: "urgency is", rule: entity.ReactionRule{Kind: entity.RuleUrgencyIs, Value: "medium"}, want: true},
		{name: "urgency at least met", rule: entity.ReactionRule{Kind: entity.RuleUrgencyAtLeast, Value: "low"}, want: true},
		{name: "urgency at least unmet", rule: entity.ReactionRule{Kind: entity.RuleUrgencyAtLeast, Value: "high"}, want: false},
		{name: "application is", rule: entity.ReactionRule{Kind: entity.RuleApplicationIs, Value: msg.ApplicationID.String()}, want: true},
		{name: "application differs", rule: entity.ReactionRule{Kind: entity.RuleApplicationIs, Value: uuid.New().String()}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := factory.MatcherFor(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Matches(msg))
		})
	}
}

func TestFactoryMatcherFor_ConfigurationErrors(t *testing.T) {
	factory := NewFactory()

	tests := []struct {
		name string
		rule entity.ReactionRule
	}{
		{name: "unknown kind", rule: entity.ReactionRule{Kind: "sms_on_fire"}},
		{name: "empty kind", rule: entity.ReactionRule{}},
		{name: "corrupt urgency value", rule: entity.ReactionRule{Kind: entity.RuleUrgencyIs, Value: "severe"}},
		{name: "corrupt urgency floor", rule: entity.ReactionRule{Kind: entity.RuleUrgencyAtLeast, Value: ""}},
		{name: "corrupt application id", rule: entity.ReactionRule{Kind: entity.RuleApplicationIs, Value: "not-a-uuid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := factory.MatcherFor(tt.rule)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrMatcherConfiguration)
		})
	}
}
