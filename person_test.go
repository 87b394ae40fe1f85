package lineage

import (
	"errors"
	"fmt"
	"testing"
)

const threePeople = `{
	"id": 1, "name": "A", "gender": "male", "is_living": false, "has_more": false,
	"children": [
		{"id": 2, "name": "B", "gender": "female", "is_living": true, "children": []},
		{"id": "c-3", "name": "C", "gender": "other", "children": null, "extra": 7}
	]
}`

func TestParseHierarchy(t *testing.T) {
	h, err := ParseHierarchy([]byte(threePeople))
	if err != nil {
		t.Fatalf("ParseHierarchy: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	root := h.Root()
	if root.ID != "1" || root.Name != "A" || root.Gender != GenderMale {
		t.Errorf("root = %+v", root)
	}
	if !root.Deceased() {
		t.Error("root.Deceased() = false, want true")
	}

	want := []PersonID{"1", "2", "c-3"}
	for i, p := range h.Descendants() {
		if p.ID != want[i] {
			t.Errorf("Descendants[%d].ID = %q, want %q", i, p.ID, want[i])
		}
	}

	b := h.Find("2")
	if b == nil {
		t.Fatal("Find(2) = nil")
	}
	if b.Parent != root || b.Depth != 1 {
		t.Errorf("B parent/depth = %p/%d, want %p/1", b.Parent, b.Depth, root)
	}
	if b.Deceased() {
		t.Error("B.Deceased() = true, want false")
	}
	if c := h.Find("c-3"); c == nil || c.Deceased() {
		t.Error("C with no is_living flag should count as living")
	}
}

func TestParseHierarchyLinks(t *testing.T) {
	h, err := ParseHierarchy([]byte(threePeople))
	if err != nil {
		t.Fatalf("ParseHierarchy: %v", err)
	}
	links := h.Links()
	if len(links) != 2 {
		t.Fatalf("len(Links) = %d, want 2", len(links))
	}
	for i, l := range links {
		if l.Source != h.Root() {
			t.Errorf("link %d source = %s, want root", i, l.Source.Name)
		}
	}
	if links[0].Target.Name != "B" || links[1].Target.Name != "C" {
		t.Errorf("link targets = %s, %s; want B, C", links[0].Target.Name, links[1].Target.Name)
	}
}

func TestParseHierarchyMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ``},
		{"null", `null`},
		{"truncated", `{"id": 1, "children": [`},
		{"array", `[{"id": 1}]`},
		{"html", `<html>oops</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHierarchy([]byte(tt.body))
			if !errors.Is(err, ErrMalformedTree) {
				t.Errorf("err = %v, want ErrMalformedTree", err)
			}
		})
	}
}

func TestNewHierarchyDropsNilChildren(t *testing.T) {
	root := &Person{ID: "r", Children: []*Person{nil, {ID: "a"}, nil}}
	h := NewHierarchy(root)
	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if len(root.Children) != 1 || len(h.Links()) != 1 {
		t.Errorf("children = %d, links = %d; want 1, 1", len(root.Children), len(h.Links()))
	}
}

func TestNewHierarchyNilRoot(t *testing.T) {
	h := NewHierarchy(nil)
	if h.Root() != nil || h.Len() != 0 || len(h.Links()) != 0 {
		t.Errorf("empty hierarchy = %+v", h)
	}
	if h.Find("x") != nil {
		t.Error("Find on empty hierarchy should return nil")
	}
}

func TestFillColor(t *testing.T) {
	tests := []struct {
		g    Gender
		want Color
	}{
		{GenderMale, ColorMale},
		{GenderFemale, ColorFemale},
		{GenderOther, ColorUnknown},
		{"", ColorUnknown},
		{"Male", ColorUnknown},
	}
	for _, tt := range tests {
		if got := FillColor(tt.g); got != tt.want {
			t.Errorf("FillColor(%q) = %06X, want %06X", tt.g, got.Hex(), tt.want.Hex())
		}
	}
}

func TestParseHierarchyWrongFieldTypes(t *testing.T) {
	h, err := ParseHierarchy([]byte(`{
		"id": 1, "name": 42, "gender": "male",
		"children": [
			{"id": 2, "name": {"first": "x"}, "gender": 7, "is_living": "no", "has_more": "yes"},
			{"id": 3, "name": true, "gender": null, "is_living": true, "has_more": true},
			{"id": 4, "name": -1.5, "children": "oops"}
		]
	}`))
	if err != nil {
		t.Fatalf("ParseHierarchy: %v", err)
	}

	tests := []struct {
		id       PersonID
		name     string
		fill     Color
		deceased bool
		hasMore  bool
	}{
		{"1", "42", ColorMale, false, false},
		{"2", "", ColorUnknown, false, false},
		{"3", "true", ColorUnknown, false, true},
		{"4", "-1.5", ColorUnknown, false, false},
	}
	for _, tt := range tests {
		p := h.Find(tt.id)
		if p == nil {
			t.Errorf("Find(%s) = nil", tt.id)
			continue
		}
		if p.Name != tt.name {
			t.Errorf("%s: Name = %q, want %q", tt.id, p.Name, tt.name)
		}
		if got := FillColor(p.Gender); got != tt.fill {
			t.Errorf("%s: fill = %06X, want %06X", tt.id, got.Hex(), tt.fill.Hex())
		}
		if p.Deceased() != tt.deceased {
			t.Errorf("%s: Deceased = %v, want %v", tt.id, p.Deceased(), tt.deceased)
		}
		if p.HasMore != tt.hasMore {
			t.Errorf("%s: HasMore = %v, want %v", tt.id, p.HasMore, tt.hasMore)
		}
	}
	if n := len(h.Find("4").Children); n != 0 {
		t.Errorf("children of a non-array children field = %d, want 0", n)
	}
}

func TestHierarchyBreadthFirstOrder(t *testing.T) {
	d := &Person{ID: "d"}
	b := &Person{ID: "b", Children: []*Person{d}}
	c := &Person{ID: "c"}
	h := NewHierarchy(&Person{ID: "a", Children: []*Person{b, c}})

	var ids []PersonID
	for _, p := range h.Descendants() {
		ids = append(ids, p.ID)
	}
	if fmt.Sprint(ids) != "[a b c d]" {
		t.Errorf("Descendants = %v, want [a b c d]", ids)
	}

	var targets []PersonID
	for _, l := range h.Links() {
		targets = append(targets, l.Target.ID)
	}
	if fmt.Sprint(targets) != "[b c d]" {
		t.Errorf("link targets = %v, want [b c d]", targets)
	}
	if d.Depth != 2 || d.Parent != b {
		t.Errorf("d depth/parent = %d/%p, want 2/%p", d.Depth, d.Parent, b)
	}
}
