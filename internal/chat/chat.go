// Package chat holds the team-chat domain types the UI renders.
package chat

import (
	"strings"
	"time"
)

// ChannelType is the one-letter channel kind.
type ChannelType string

const (
	ChannelOpen    ChannelType = "O"
	ChannelPrivate ChannelType = "P"
	ChannelDirect  ChannelType = "D"
	ChannelGroup   ChannelType = "G"
)

// IsDirect reports whether the channel is a DM or group message.
func (t ChannelType) IsDirect() bool {
	return t == ChannelDirect || t == ChannelGroup
}

// Channel is a conversation container.
type Channel struct {
	ID          string      `json:"id"`
	TeamID      string      `json:"team_id"`
	Type        ChannelType `json:"type"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
}

// Status is a user's presence.
type Status string

const (
	StatusOnline  Status = "online"
	StatusAway    Status = "away"
	StatusDND     Status = "dnd"
	StatusOffline Status = "offline"
)

// User is a team member profile.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
}

// DisplayName prefers the full name, then the nickname, then the username.
func (u User) DisplayName() string {
	if full := strings.TrimSpace(u.FirstName + " " + u.LastName); full != "" {
		return full
	}
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}

// Initials are up to two letters for the avatar badge.
func (u User) Initials() string {
	var out []rune
	for _, part := range []string{u.FirstName, u.LastName} {
		if r := []rune(part); len(r) > 0 {
			out = append(out, r[0])
		}
	}
	if len(out) == 0 {
		r := []rune(u.Username)
		out = r[:min(2, len(r))]
	}
	return strings.ToUpper(string(out))
}

// DraftType distinguishes channel drafts from thread replies.
type DraftType string

const (
	DraftChannel DraftType = "channel"
	DraftThread  DraftType = "thread"
)

// Draft is an unsent message.
type Draft struct {
	Key       string    `json:"key"`
	Type      DraftType `json:"type"`
	ChannelID string    `json:"channel_id"`
	RootID    string    `json:"root_id,omitempty"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updated_at"`
}
