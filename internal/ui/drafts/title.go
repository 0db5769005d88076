// Package drafts renders the unsent-message list: a row per draft with its
// destination title, a wrapped preview and edit/delete/send actions.
package drafts

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/parley/internal/chat"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/ui/styles"
)

// Props describes where a draft will be posted.
type Props struct {
	Channel      chat.Channel
	ChannelName  string
	MembersCount int
	SelfDraft    bool
	Teammate     *chat.User
	TeammateID   string
	Type         chat.DraftType
}

// ProfileFetcher loads user profiles the client has not seen yet.
type ProfileFetcher interface {
	GetMissingProfilesByIDs(ctx context.Context, ids []string) ([]chat.User, error)
}

// ProfilesLoadedMsg carries the result of a missing-profile fetch.
type ProfilesLoadedMsg struct {
	IDs   []string
	Users []chat.User
	Err   error
}

// Directory is the lookup surface PropsFor needs.
type Directory interface {
	Me() chat.User
	Channel(id string) (chat.Channel, bool)
	ChannelName(id string) string
	MemberCount(id string) int
	TeammateID(id string) string
	User(id string) (chat.User, bool)
	Status(id string) chat.Status
}

// PropsFor resolves a draft's destination against dir.
func PropsFor(dir Directory, d chat.Draft) Props {
	c, _ := dir.Channel(d.ChannelID)
	p := Props{
		Channel:      c,
		ChannelName:  dir.ChannelName(d.ChannelID),
		MembersCount: dir.MemberCount(d.ChannelID),
		TeammateID:   dir.TeammateID(d.ChannelID),
		Type:         d.Type,
	}
	if p.TeammateID != "" {
		if u, ok := dir.User(p.TeammateID); ok {
			p.Teammate = &u
		}
		p.SelfDraft = p.TeammateID == dir.Me().ID
	}
	return p
}

// Icon is the channel-type badge: # for open channels, a lock for private
// ones, the teammate's initials in a DM and the member count in a group.
func Icon(p Props) string {
	icon := "#"
	if p.Channel.Type == chat.ChannelPrivate {
		icon = "🔒"
	}
	if p.Channel.Type == chat.ChannelDirect && p.Teammate != nil {
		icon = styles.AvatarStyle.Render(p.Teammate.Initials())
	}
	if p.Channel.Type == chat.ChannelGroup {
		icon = styles.GroupCountStyle.Render(strconv.Itoa(p.MembersCount))
	}
	return icon
}

// Title renders the destination line. Thread drafts read "Thread in:" or
// "Thread to:", channel drafts "In:" or "To:", depending on whether the
// channel is a DM/GM. "(you)" marks self drafts except on "In:".
func Title(p Props) string {
	direct := p.Channel.Type.IsDirect()

	var prefix string
	you := p.SelfDraft
	switch {
	case p.Type == chat.DraftThread && !direct:
		prefix = "Thread in:"
	case p.Type == chat.DraftThread:
		prefix = "Thread to:"
	case !direct:
		prefix = "In:"
		you = false
	default:
		prefix = "To:"
	}

	title := styles.DraftTitleStyle.Render(prefix) + " " + Icon(p) + " " + styles.DraftNameStyle.Render(p.ChannelName)
	if you {
		title += " " + styles.MutedStyle.Render("(you)")
	}
	return title
}

// FetchMissingProfile returns a command that loads the DM teammate when the
// id is known but the profile is not. It returns nil otherwise.
func FetchMissingProfile(ctx context.Context, f ProfileFetcher, p Props) tea.Cmd {
	if f == nil || p.TeammateID == "" || (p.Teammate != nil && p.Teammate.ID != "") {
		return nil
	}
	ids := []string{p.TeammateID}
	return func() tea.Msg {
		users, err := f.GetMissingProfilesByIDs(ctx, ids)
		if err != nil {
			log.ErrorErr(log.CatUI, "fetching missing profiles", err, "ids", ids)
		}
		return ProfilesLoadedMsg{IDs: ids, Users: users, Err: err}
	}
}
