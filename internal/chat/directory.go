package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/parley/internal/log"
)

// ErrUnknownChannel is returned for a channel id the directory has not seen.
var ErrUnknownChannel = errors.New("unknown channel")

// Directory is an in-memory team: channels, members, presence and drafts.
// Profiles not yet loaded live in a remote set and are pulled in by
// GetMissingProfilesByIDs.
type Directory struct {
	mu       sync.RWMutex
	team     string
	me       string
	channels map[string]Channel
	members  map[string][]string
	users    map[string]User
	remote   map[string]User
	status   map[string]Status
	drafts   map[string]Draft
	now      func() time.Time
}

// NewDirectory creates an empty directory for team with me as the current
// user.
func NewDirectory(team string, me User) *Directory {
	d := &Directory{
		team:     team,
		me:       me.ID,
		channels: map[string]Channel{},
		members:  map[string][]string{},
		users:    map[string]User{me.ID: me},
		remote:   map[string]User{},
		status:   map[string]Status{me.ID: StatusOnline},
		drafts:   map[string]Draft{},
		now:      time.Now,
	}
	return d
}

// Team is the team name.
func (d *Directory) Team() string { return d.team }

// Me is the current user.
func (d *Directory) Me() User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.users[d.me]
}

// AddChannel registers a channel and its member ids.
func (d *Directory) AddChannel(c Channel, members ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels[c.ID] = c
	d.members[c.ID] = append([]string(nil), members...)
}

// AddUser registers a loaded profile.
func (d *Directory) AddUser(u User, s Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.ID] = u
	d.status[u.ID] = s
}

// AddRemoteUser registers a profile that must be fetched before it is known.
func (d *Directory) AddRemoteUser(u User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.remote[u.ID] = u
}

// Channel looks up a channel.
func (d *Directory) Channel(id string) (Channel, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.channels[id]
	return c, ok
}

// User looks up a loaded profile.
func (d *Directory) User(id string) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	return u, ok
}

// Status is the presence of a loaded user, offline when unknown.
func (d *Directory) Status(id string) Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if s, ok := d.status[id]; ok {
		return s
	}
	return StatusOffline
}

// MemberCount is the number of members of a channel.
func (d *Directory) MemberCount(channelID string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.members[channelID])
}

// TeammateID is the other member of a DM, "" for any other channel.
func (d *Directory) TeammateID(channelID string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.channels[channelID]
	if !ok || c.Type != ChannelDirect {
		return ""
	}
	for _, id := range d.members[channelID] {
		if id != d.me {
			return id
		}
	}
	// A DM with yourself.
	return d.me
}

// ChannelName is the name a draft title shows: the teammate for a DM, the
// display name otherwise.
func (d *Directory) ChannelName(channelID string) string {
	c, ok := d.Channel(channelID)
	if !ok {
		return ""
	}
	if c.Type == ChannelDirect {
		if u, ok := d.User(d.TeammateID(channelID)); ok {
			return u.Username
		}
	}
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Name
}

// GetMissingProfilesByIDs loads the remote profiles among ids and returns
// the ones that were newly loaded.
func (d *Directory) GetMissingProfilesByIDs(ctx context.Context, ids []string) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var loaded []User
	for _, id := range ids {
		if _, ok := d.users[id]; ok {
			continue
		}
		u, ok := d.remote[id]
		if !ok {
			continue
		}
		delete(d.remote, id)
		d.users[id] = u
		d.status[id] = StatusOffline
		loaded = append(loaded, u)
	}
	log.Debug(log.CatUI, "fetched missing profiles", "requested", len(ids), "loaded", len(loaded))
	return loaded, nil
}

// SaveDraft stores a draft, assigning a key when it has none.
func (d *Directory) SaveDraft(dr Draft) (Draft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.channels[dr.ChannelID]; !ok {
		return Draft{}, fmt.Errorf("saving draft: %w: %s", ErrUnknownChannel, dr.ChannelID)
	}
	if dr.Key == "" {
		dr.Key = uuid.NewString()
	}
	if dr.UserID == "" {
		dr.UserID = d.me
	}
	if dr.Type == "" {
		dr.Type = DraftChannel
		if dr.RootID != "" {
			dr.Type = DraftThread
		}
	}
	dr.UpdatedAt = d.now()
	d.drafts[dr.Key] = dr
	return dr, nil
}

// DeleteDraft removes a draft. Unknown keys are ignored.
func (d *Directory) DeleteDraft(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.drafts, key)
}

// Draft looks up a draft by key.
func (d *Directory) Draft(key string) (Draft, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	dr, ok := d.drafts[key]
	return dr, ok
}

// Drafts lists drafts newest first.
func (d *Directory) Drafts() []Draft {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Draft, 0, len(d.drafts))
	for _, dr := range d.drafts {
		out = append(out, dr)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Channels lists channels sorted by type then name.
func (d *Directory) Channels() []Channel {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Channel, 0, len(d.channels))
	for _, c := range d.channels {
		out = append(out, c)
	}
	order := []ChannelType{ChannelOpen, ChannelPrivate, ChannelGroup, ChannelDirect}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := slices.Index(order, out[i].Type), slices.Index(order, out[j].Type)
		if ti != tj {
			return ti < tj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
