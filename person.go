package lineage

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrMalformedTree is returned when a tree payload cannot be decoded into a
// rooted hierarchy.
var ErrMalformedTree = errors.New("lineage: malformed tree payload")

// PersonID is the backend's opaque identifier for a person. The backend sends
// numbers; strings are accepted as well.
type PersonID string

// UnmarshalJSON accepts a JSON number, string or null.
func (id *PersonID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		*id = PersonID(unq)
		return nil
	}
	*id = PersonID(s)
	return nil
}

// Gender selects a node's fill color. Values other than GenderMale and
// GenderFemale (including empty) are drawn as unknown.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// FillColor maps a gender to the node fill color.
func FillColor(g Gender) Color {
	switch g {
	case GenderMale:
		return ColorMale
	case GenderFemale:
		return ColorFemale
	default:
		return ColorUnknown
	}
}

// Person is one family member as served by the tree API. Unknown fields in the
// payload are ignored.
type Person struct {
	ID       PersonID  `json:"id"`
	Name     string    `json:"name"`
	Gender   Gender    `json:"gender"`
	IsLiving *bool     `json:"is_living,omitempty"`
	HasMore  bool      `json:"has_more,omitempty"`
	Children []*Person `json:"children,omitempty"`

	// Assigned by NewHierarchy.
	Parent *Person `json:"-"`
	Depth  int     `json:"-"`

	// Assigned by the layout pass; only meaningful right after one.
	X, Y float64 `json:"-"`
}

// UnmarshalJSON decodes one person leniently: a name or gender of the wrong
// JSON type degrades to its literal text or to empty instead of failing the
// whole tree. Only a non-object person or a malformed document is an error.
func (p *Person) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       PersonID        `json:"id"`
		Name     json.RawMessage `json:"name"`
		Gender   json.RawMessage `json:"gender"`
		IsLiving json.RawMessage `json:"is_living"`
		HasMore  json.RawMessage `json:"has_more"`
		Children json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	p.Name = literalText(raw.Name)
	p.Gender = Gender(stringValue(raw.Gender))
	p.IsLiving = nil
	if v, ok := boolValue(raw.IsLiving); ok {
		p.IsLiving = &v
	}
	p.HasMore, _ = boolValue(raw.HasMore)
	p.Children = nil
	if c := bytes.TrimSpace(raw.Children); len(c) > 0 && c[0] == '[' {
		if err := json.Unmarshal(c, &p.Children); err != nil {
			return err
		}
	}
	return nil
}

// literalText renders a JSON scalar as label text. Strings are unquoted,
// numbers and booleans keep their literal form, anything else is empty.
func literalText(raw json.RawMessage) string {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return ""
	}
	switch {
	case v[0] == '"':
		return stringValue(v)
	case v[0] == '-' || (v[0] >= '0' && v[0] <= '9'):
		return string(v)
	case string(v) == "true" || string(v) == "false":
		return string(v)
	}
	return ""
}

// stringValue returns the JSON string in raw, or "" for any other type.
func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// boolValue returns the JSON boolean in raw; ok is false for any other type.
func boolValue(raw json.RawMessage) (v, ok bool) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Deceased reports whether the backend marked this person as not living.
// A missing flag counts as living.
func (p *Person) Deceased() bool {
	return p.IsLiving != nil && !*p.IsLiving
}

// Link is a parent-child edge.
type Link struct {
	Source, Target *Person
}

// Hierarchy is a rooted tree of people from one fetch. It is read-only apart
// from the layout coordinates stored on each Person.
type Hierarchy struct {
	root  *Person
	nodes []*Person // breadth-first
	links []Link
}

// NewHierarchy wires parent pointers and depths below root and caches the
// breadth-first node list and link list. Nil children are dropped.
func NewHierarchy(root *Person) *Hierarchy {
	h := &Hierarchy{root: root}
	if root == nil {
		return h
	}
	root.Parent = nil
	root.Depth = 0

	queue := []*Person{root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		h.nodes = append(h.nodes, p)

		kept := p.Children[:0]
		for _, c := range p.Children {
			if c != nil {
				kept = append(kept, c)
			}
		}
		p.Children = kept

		for _, c := range p.Children {
			c.Parent = p
			c.Depth = p.Depth + 1
			h.links = append(h.links, Link{Source: p, Target: c})
			queue = append(queue, c)
		}
	}
	return h
}

// ParseHierarchy decodes a tree payload whose top level is the root person.
func ParseHierarchy(data []byte) (*Hierarchy, error) {
	var root *Person
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedTree)
	}
	return NewHierarchy(root), nil
}

// Root returns the root person, or nil for an empty hierarchy.
func (h *Hierarchy) Root() *Person {
	return h.root
}

// Descendants returns every person in breadth-first order, root first. The returned
// slice MUST NOT be mutated by the caller.
func (h *Hierarchy) Descendants() []*Person {
	return h.nodes
}

// Links returns every parent-child edge, ordered by target as in Descendants. The returned slice MUST NOT be
// mutated by the caller.
func (h *Hierarchy) Links() []Link {
	return h.links
}

// Len returns the number of people in the hierarchy.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// Find returns the first person with the given id in breadth-first order, or nil.
func (h *Hierarchy) Find(id PersonID) *Person {
	for _, p := range h.nodes {
		if p.ID == id {
			return p
		}
	}
	return nil
}
