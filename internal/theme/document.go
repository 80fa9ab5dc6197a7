package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DataAttribute is the attribute set on the primary root.
const DataAttribute = "data-theme"

// Element is one presentation root: a class set plus attributes.
type Element struct {
	Name    string
	classes map[string]struct{}
	attrs   map[string]string
}

func newElement(name string, classes ...string) *Element {
	e := &Element{Name: name, classes: map[string]struct{}{}, attrs: map[string]string{}}
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			e.classes[c] = struct{}{}
		}
	}
	return e
}

// Classes returns the class names in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HTML renders the element's class and attribute list, e.g.
// `class="dark" data-theme="dark"`.
func (e *Element) HTML() string {
	var parts []string
	if classes := e.Classes(); len(classes) > 0 {
		parts = append(parts, fmt.Sprintf("class=%q", strings.Join(classes, " ")))
	}
	names := make([]string, 0, len(e.attrs))
	for n := range e.attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s=%q", n, e.attrs[n]))
	}
	return strings.Join(parts, " ")
}

// Markers is a comparable snapshot of the theme markers on both roots.
type Markers struct {
	Root      string // classes on the primary root, space separated
	Body      string // classes on the body root, space separated
	DataTheme string
}

// Document models the two browser presentation roots (the document element
// and the body). It implements PresentationTarget.
type Document struct {
	mu   sync.Mutex
	root *Element
	body *Element
}

// NewDocument returns a Document whose roots already carry the given
// unrelated classes. Theme markers never touch them.
func NewDocument(rootClasses, bodyClasses []string) *Document {
	return &Document{
		root: newElement("html", rootClasses...),
		body: newElement("body", bodyClasses...),
	}
}

// ApplyMarkers sets class r on both roots and data-theme=r on the primary
// root, removing any previous theme marker first.
func (d *Document) ApplyMarkers(r Resolved) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearLocked()
	d.root.classes[string(r)] = struct{}{}
	d.body.classes[string(r)] = struct{}{}
	d.root.attrs[DataAttribute] = string(r)
}

// ClearMarkers removes the light/dark classes and the data attribute.
func (d *Document) ClearMarkers() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLocked()
}

func (d *Document) clearLocked() {
	for _, e := range []*Element{d.root, d.body} {
		delete(e.classes, string(ResolvedLight))
		delete(e.classes, string(ResolvedDark))
	}
	delete(d.root.attrs, DataAttribute)
}

// Markers returns the current marker state.
func (d *Document) Markers() Markers {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Markers{
		Root:      strings.Join(d.root.Classes(), " "),
		Body:      strings.Join(d.body.Classes(), " "),
		DataTheme: d.root.attrs[DataAttribute],
	}
}

// Attrs renders the attribute lists of the primary root and the body.
func (d *Document) Attrs() (root, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.root.HTML(), d.body.HTML()
}

// Targets fans markers out to several targets in order.
func Targets(targets ...PresentationTarget) PresentationTarget {
	return multiTarget(targets)
}

type multiTarget []PresentationTarget

func (t multiTarget) ApplyMarkers(r Resolved) {
	for _, target := range t {
		if target != nil {
			target.ApplyMarkers(r)
		}
	}
}

func (t multiTarget) ClearMarkers() {
	for _, target := range t {
		if target != nil {
			target.ClearMarkers()
		}
	}
}
