// Package actor implements a small hierarchical, supervised, mailbox-driven
// actor runtime in the style of the teacher's bollywood engine, generalized
// with Path-based addressing, true unbounded mailboxes, ask/reply, idle
// timeouts and retry supervision.
package actor

import "strings"

// Path is a hierarchical identifier for a running actor, rendered as
// "/a/b/c". Construction from a string splits on "/" and drops empty
// segments, so "/a//b/" and "a/b" parse to the same Path.
type Path struct {
	segments []string
}

// PathFromString parses a slash-separated path.
func PathFromString(s string) Path {
	raw := strings.Split(s, "/")
	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		if strings.TrimSpace(seg) != "" {
			segments = append(segments, seg)
		}
	}
	return Path{segments: segments}
}

// Child appends a segment, mirroring the original's `path / "segment"`
// division operator.
func (p Path) Child(segment string) Path {
	segments := make([]string, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	segments = append(segments, segment)
	return Path{segments: segments}
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Root returns the first segment as a one-element path.
func (p Path) Root() Path {
	if len(p.segments) == 0 {
		return Path{}
	}
	return Path{segments: p.segments[:1]}
}

// Parent drops the last segment. The parent of a top-level or empty path is
// empty.
func (p Path) Parent() Path {
	if len(p.segments) <= 1 {
		return Path{}
	}
	return Path{segments: p.segments[:len(p.segments)-1]}
}

// Key returns the last segment, or "" for an empty path.
func (p Path) Key() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Level returns the number of segments.
func (p Path) Level() int {
	return len(p.segments)
}

// AtLevel truncates the path to the given level. Levels outside [1, Level())
// return the path unchanged.
func (p Path) AtLevel(level int) Path {
	if level < 1 || level >= p.Level() {
		return p
	}
	if p.IsTopLevel() {
		return p.Root()
	}
	if level == p.Level()-1 {
		return p.Parent()
	}
	segments := make([]string, level)
	copy(segments, p.segments)
	return Path{segments: segments}
}

// IsTopLevel reports whether the path has exactly one segment.
func (p Path) IsTopLevel() bool {
	return len(p.segments) == 1
}

// IsAncestorOf reports whether other is strictly nested under p.
func (p Path) IsAncestorOf(other Path) bool {
	return strings.HasPrefix(other.String(), p.String()+"/")
}

// IsDescendantOf reports whether p is strictly nested under other.
func (p Path) IsDescendantOf(other Path) bool {
	return other.IsAncestorOf(p)
}

// IsParentOf reports whether p is the immediate parent of other.
func (p Path) IsParentOf(other Path) bool {
	return p.Equal(other.Parent())
}

// IsChildOf reports whether p is an immediate child of other.
func (p Path) IsChildOf(other Path) bool {
	return p.Parent().Equal(other)
}

// Equal reports segment-wise equality.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, seg := range p.segments {
		if other.segments[i] != seg {
			return false
		}
	}
	return true
}

// String renders the path as "/a/b/c"; the empty path renders as "/".
func (p Path) String() string {
	switch {
	case len(p.segments) == 0:
		return "/"
	default:
		return "/" + strings.Join(p.segments, "/")
	}
}
