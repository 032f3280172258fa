// Package matcher evaluates stored reaction rules against messages.
package matcher

import (
	"strings"

	"herald/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageMatcher is the leaf evaluation primitive: a pure predicate over a
// message. Matchers never mutate the message and never fail.
type MessageMatcher interface {
	Matches(msg *entity.Message) bool
}

type alwaysMatcher struct{}

func (alwaysMatcher) Matches(*entity.Message) bool { return true }

type neverMatcher struct{}

func (neverMatcher) Matches(*entity.Message) bool { return false }

type titleContainsMatcher struct {
	substring string
}

func (m titleContainsMatcher) Matches(msg *entity.Message) bool {
	return strings.Contains(msg.Title, m.substring)
}

type titleIsMatcher struct {
	title string
}

func (m titleIsMatcher) Matches(msg *entity.Message) bool {
	return msg.Title == m.title
}

type bodyContainsMatcher struct {
	substring string
}

func (m bodyContainsMatcher) Matches(msg *entity.Message) bool {
	return strings.Contains(msg.Body, m.substring)
}

type hostnameIsMatcher struct {
	hostname string
}

func (m hostnameIsMatcher) Matches(msg *entity.Message) bool {
	return msg.Hostname == m.hostname
}

type urgencyIsMatcher struct {
	urgency entity.Urgency
}

func (m urgencyIsMatcher) Matches(msg *entity.Message) bool {
	return msg.Urgency == m.urgency
}

type urgencyAtLeastMatcher struct {
	floor entity.Urgency
}

func (m urgencyAtLeastMatcher) Matches(msg *entity.Message) bool {
	return msg.Urgency.Level() >= m.floor.Level()
}

type applicationIsMatcher struct {
	appID uuid.UUID
}

func (m applicationIsMatcher) Matches(msg *entity.Message) bool {
	return msg.ApplicationID == m.appID
}
