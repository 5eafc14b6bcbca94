package actor

import "testing"

func TestPath_StringRendersSlashSeparated(t *testing.T) {
	p := PathFromString("user").Child("room-1").Child("player-2")
	if got, want := p.String(), "/user/room-1/player-2"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestPathFromString_DropsEmptySegments(t *testing.T) {
	a := PathFromString("/a//b/")
	b := PathFromString("a/b")
	if !a.Equal(b) {
		t.Fatalf("expected %q and %q to be equal", a, b)
	}
}

func TestPath_RootParentKeyLevel(t *testing.T) {
	p := PathFromString("user/room-1/player-2")

	if got, want := p.Root().String(), "/user"; got != want {
		t.Fatalf("Root() = %q, want %q", got, want)
	}
	if got, want := p.Parent().String(), "/user/room-1"; got != want {
		t.Fatalf("Parent() = %q, want %q", got, want)
	}
	if got, want := p.Key(), "player-2"; got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}
	if got, want := p.Level(), 3; got != want {
		t.Fatalf("Level() = %d, want %d", got, want)
	}
}

func TestPath_AncestorDescendantParentChild(t *testing.T) {
	root := PathFromString("user")
	room := root.Child("room-1")
	player := room.Child("player-2")

	if !root.IsAncestorOf(player) {
		t.Fatal("root should be an ancestor of player")
	}
	if !player.IsDescendantOf(root) {
		t.Fatal("player should be a descendant of root")
	}
	if !room.IsParentOf(player) {
		t.Fatal("room should be the parent of player")
	}
	if !player.IsChildOf(room) {
		t.Fatal("player should be a child of room")
	}
	if root.IsAncestorOf(root) {
		t.Fatal("a path should not be its own ancestor")
	}
}

func TestPath_IsAncestorOfDoesNotMatchOnSharedPrefix(t *testing.T) {
	a := PathFromString("user/room-1")
	b := PathFromString("user/room-10")

	if a.IsAncestorOf(b) {
		t.Fatal("room-1 should not be considered an ancestor of room-10 on string-prefix alone")
	}
}

func TestPath_AtLevelTruncates(t *testing.T) {
	p := PathFromString("user/room-1/player-2")
	if got, want := p.AtLevel(2).String(), "/user/room-1"; got != want {
		t.Fatalf("AtLevel(2) = %q, want %q", got, want)
	}
}
