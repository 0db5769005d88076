package chat

import (
	"time"

	"github.com/google/uuid"
)

// Demo ids used by the playground.
const (
	DemoTownSquare = "town-square"
	DemoPrivate    = "core-leads"
	DemoDM         = "dm-alice"
	DemoDMRemote   = "dm-bob"
	DemoGroup      = "gm-release"
	DemoSelfDM     = "dm-self"
)

// NewDemoDirectory seeds a team with one channel of each kind and a draft
// per title variant. bob's profile is remote so his draft triggers a fetch.
func NewDemoDirectory(team, username string) *Directory {
	me := User{ID: uuid.NewString(), Username: username}
	alice := User{ID: uuid.NewString(), Username: "alice", FirstName: "Alice", LastName: "Moreau"}
	bob := User{ID: uuid.NewString(), Username: "bob", FirstName: "Bob", LastName: "Okafor"}
	carol := User{ID: uuid.NewString(), Username: "carol", Nickname: "cj"}

	d := NewDirectory(team, me)
	d.AddUser(alice, StatusOnline)
	d.AddUser(carol, StatusAway)
	d.AddRemoteUser(bob)

	d.AddChannel(Channel{ID: DemoTownSquare, Type: ChannelOpen, Name: "town-square", DisplayName: "Town Square"}, me.ID, alice.ID, bob.ID, carol.ID)
	d.AddChannel(Channel{ID: DemoPrivate, Type: ChannelPrivate, Name: "core-leads", DisplayName: "Core Leads"}, me.ID, alice.ID)
	d.AddChannel(Channel{ID: DemoDM, Type: ChannelDirect, Name: me.ID + "__" + alice.ID}, me.ID, alice.ID)
	d.AddChannel(Channel{ID: DemoDMRemote, Type: ChannelDirect, Name: me.ID + "__" + bob.ID}, me.ID, bob.ID)
	d.AddChannel(Channel{ID: DemoGroup, Type: ChannelGroup, Name: "release", DisplayName: "alice, carol, " + username}, me.ID, alice.ID, carol.ID)
	d.AddChannel(Channel{ID: DemoSelfDM, Type: ChannelDirect, Name: me.ID + "__" + me.ID}, me.ID)

	base := time.Now().Add(-time.Hour)
	seed := []Draft{
		{ChannelID: DemoTownSquare, Message: "Reminder: the **release train** leaves Thursday. Please get your reviews in by Wednesday evening so QA has a full day."},
		{ChannelID: DemoPrivate, RootID: uuid.NewString(), Message: "I think we should push the migration to next sprint."},
		{ChannelID: DemoDM, Message: "Lunch tomorrow?"},
		{ChannelID: DemoDMRemote, RootID: uuid.NewString(), Message: "Following up on the flaky test, see the thread in town square."},
		{ChannelID: DemoGroup, Message: "Release notes draft is in the doc, comments welcome :tada:"},
		{ChannelID: DemoSelfDM, Message: "todo: rotate the staging certs"},
	}
	for i, dr := range seed {
		d.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		if _, err := d.SaveDraft(dr); err != nil {
			panic(err)
		}
	}
	d.now = time.Now
	return d
}
