package lineage

// TreeLayout assigns tidy-tree coordinates to a Hierarchy. It uses the
// Buchheim/Walker linear-time variant of Reingold-Tilford: parents are centered
// over their children, subtrees are packed as close as Separation allows, and
// the root lands at (0, 0).
//
// X positions are multiples of NodeSize.X (the distance between adjacent
// siblings); Y is depth times NodeSize.Y.
type TreeLayout struct {
	NodeSize Vec2

	// Separation returns the distance between two horizontally adjacent
	// nodes, in units of NodeSize.X. Nil means DefaultSeparation.
	Separation func(a, b *Person) float64
}

// NewTreeLayout returns the layout used by the renderer: 80 units between
// siblings and 180 units between generations.
func NewTreeLayout() TreeLayout {
	return TreeLayout{NodeSize: Vec2{X: NodeSpacing, Y: LevelSpacing}}
}

// DefaultSeparation keeps siblings one unit apart and cousins two.
func DefaultSeparation(a, b *Person) float64 {
	if a.Parent == b.Parent {
		return 1
	}
	return 2
}

// layoutNode mirrors a Person during the layout pass.
type layoutNode struct {
	person   *Person
	parent   *layoutNode
	children []*layoutNode
	index    int // position among siblings

	prelim   float64     // preliminary x
	mod      float64     // modifier applied to the subtree
	change   float64     // shift change
	shift    float64     // pending shift
	thread   *layoutNode // contour thread
	ancestor *layoutNode
	defAnc   *layoutNode // default ancestor, kept on the parent
}

// Apply lays out h in place, setting X and Y on every person.
func (l TreeLayout) Apply(h *Hierarchy) {
	if h == nil || h.root == nil {
		return
	}
	sep := l.Separation
	if sep == nil {
		sep = DefaultSeparation
	}

	// A synthetic parent above the root gives firstWalk a uniform sibling list.
	top := &layoutNode{}
	root := buildLayoutTree(h.root, top, 0)
	top.children = []*layoutNode{root}

	eachAfter(root, func(v *layoutNode) { firstWalk(v, sep) })
	top.mod = -root.prelim
	eachBefore(root, secondWalk)

	for _, p := range h.nodes {
		p.X *= l.NodeSize.X
		p.Y = float64(p.Depth) * l.NodeSize.Y
	}
}

func buildLayoutTree(p *Person, parent *layoutNode, index int) *layoutNode {
	v := &layoutNode{person: p, parent: parent, index: index}
	v.ancestor = v
	if len(p.Children) > 0 {
		v.children = make([]*layoutNode, len(p.Children))
		for i, c := range p.Children {
			v.children[i] = buildLayoutTree(c, v, i)
		}
	}
	return v
}

// eachAfter visits v's subtree in post-order.
func eachAfter(v *layoutNode, fn func(*layoutNode)) {
	for _, c := range v.children {
		eachAfter(c, fn)
	}
	fn(v)
}

// eachBefore visits v's subtree in pre-order.
func eachBefore(v *layoutNode, fn func(*layoutNode)) {
	fn(v)
	for _, c := range v.children {
		eachBefore(c, fn)
	}
}

// firstWalk computes a preliminary x for v once its children are placed.
func firstWalk(v *layoutNode, sep func(a, b *Person) float64) {
	siblings := v.parent.children
	var w *layoutNode // left sibling
	if v.index > 0 {
		w = siblings[v.index-1]
	}

	if len(v.children) > 0 {
		executeShifts(v)
		midpoint := (v.children[0].prelim + v.children[len(v.children)-1].prelim) / 2
		if w != nil {
			v.prelim = w.prelim + sep(v.person, w.person)
			v.mod = v.prelim - midpoint
		} else {
			v.prelim = midpoint
		}
	} else if w != nil {
		v.prelim = w.prelim + sep(v.person, w.person)
	}

	anc := v.parent.defAnc
	if anc == nil {
		anc = siblings[0]
	}
	v.parent.defAnc = apportion(v, w, anc, sep)
}

// secondWalk turns preliminary positions into final x by summing modifiers.
func secondWalk(v *layoutNode) {
	v.person.X = v.prelim + v.parent.mod
	v.mod += v.parent.mod
}

// apportion pushes v's subtree right until its left contour clears the right
// contour of the subtrees to its left, spreading the shift over the siblings
// in between.
func apportion(v, w, ancestor *layoutNode, sep func(a, b *Person) float64) *layoutNode {
	if w == nil {
		return ancestor
	}
	vip, vop := v, v
	vim := w
	vom := v.parent.children[0]
	sip, sop := vip.mod, vop.mod
	sim, som := vim.mod, vom.mod

	for {
		vim = nextRight(vim)
		vip = nextLeft(vip)
		if vim == nil || vip == nil {
			break
		}
		vom = nextLeft(vom)
		vop = nextRight(vop)
		vop.ancestor = v
		shift := vim.prelim + sim - vip.prelim - sip + sep(vim.person, vip.person)
		if shift > 0 {
			moveSubtree(nextAncestor(vim, v, ancestor), v, shift)
			sip += shift
			sop += shift
		}
		sim += vim.mod
		sip += vip.mod
		som += vom.mod
		sop += vop.mod
	}

	if vim != nil && nextRight(vop) == nil {
		vop.thread = vim
		vop.mod += sim - sop
	}
	if vip != nil && nextLeft(vom) == nil {
		vom.thread = vip
		vom.mod += sip - som
		ancestor = v
	}
	return ancestor
}

func nextLeft(v *layoutNode) *layoutNode {
	if len(v.children) > 0 {
		return v.children[0]
	}
	return v.thread
}

func nextRight(v *layoutNode) *layoutNode {
	if len(v.children) > 0 {
		return v.children[len(v.children)-1]
	}
	return v.thread
}

func moveSubtree(wm, wp *layoutNode, shift float64) {
	change := shift / float64(wp.index-wm.index)
	wp.change -= change
	wp.shift += shift
	wm.change += change
	wp.prelim += shift
	wp.mod += shift
}

func executeShifts(v *layoutNode) {
	var shift, change float64
	for i := len(v.children) - 1; i >= 0; i-- {
		w := v.children[i]
		w.prelim += shift
		w.mod += shift
		change += w.change
		shift += w.shift + change
	}
}

func nextAncestor(vim, v, ancestor *layoutNode) *layoutNode {
	if vim.ancestor.parent == v.parent {
		return vim.ancestor
	}
	return ancestor
}
