// Package expander tracks open state for collapsible panels and the group
// that can open or close all of them at once.
package expander

// Broadcast is a group level command telling every panel which state to be in.
// Seq increases with each request so panels can ignore a replayed command.
type Broadcast struct {
	Target bool
	Seq    uint64
}

// Subscriber receives group level broadcasts. Panels implement it.
type Subscriber interface {
	OnBroadcast(Broadcast)
}

type subscription struct {
	id  int
	sub Subscriber
}

// Group keeps an aggregate view over a dynamic set of panels. Counters are
// maintained incrementally so a change never rescans the whole set.
type Group struct {
	panels     map[string]bool
	openCount  int
	totalCount int
	allOpen    bool
	target     bool
	seq        uint64

	subscribers []subscription
	nextSubID   int
	listeners   map[int]func(allOpen bool)
	nextListen  int
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{
		panels:    make(map[string]bool),
		listeners: make(map[int]func(bool)),
	}
}

// Register adds a panel with its initial state. Registering a known id
// behaves like Update.
func (g *Group) Register(id string, open bool) {
	g.Update(id, open)
}

// Update records the current state for id. Unknown ids are registered.
func (g *Group) Update(id string, open bool) {
	previous, known := g.panels[id]
	switch {
	case !known:
		g.totalCount++
		if open {
			g.openCount++
		}
	case previous != open:
		if open {
			g.openCount++
		} else {
			g.openCount--
		}
	}
	g.panels[id] = open
	g.recompute()
}

// Unregister removes id from the group. Unknown ids are ignored.
func (g *Group) Unregister(id string) {
	open, known := g.panels[id]
	if !known {
		return
	}
	if open {
		g.openCount--
	}
	g.totalCount--
	delete(g.panels, id)
	g.recompute()
}

// Set applies registerOrUpdate semantics: a nil state unregisters id.
func (g *Group) Set(id string, open *bool) {
	if open == nil {
		g.Unregister(id)
		return
	}
	g.Update(id, *open)
}

// RequestToggleAll broadcasts a new target to every subscribed panel and
// returns it. The target is the opposite of the current aggregate, so "open
// all" is sent unless every panel is already open. An empty group flips the
// previous target instead.
func (g *Group) RequestToggleAll() Broadcast {
	if g.totalCount == 0 {
		g.target = !g.target
	} else {
		g.target = !g.allOpen
	}
	g.seq++
	b := Broadcast{Target: g.target, Seq: g.seq}

	subs := make([]subscription, len(g.subscribers))
	copy(subs, g.subscribers)
	for _, s := range subs {
		s.sub.OnBroadcast(b)
	}
	return b
}

// Subscribe registers a panel for broadcasts. The returned func removes it.
func (g *Group) Subscribe(sub Subscriber) func() {
	g.nextSubID++
	id := g.nextSubID
	g.subscribers = append(g.subscribers, subscription{id: id, sub: sub})
	return func() {
		for i, s := range g.subscribers {
			if s.id == id {
				g.subscribers = append(g.subscribers[:i], g.subscribers[i+1:]...)
				return
			}
		}
	}
}

// OnAllOpenChange registers fn to run whenever the aggregate flag flips.
func (g *Group) OnAllOpenChange(fn func(allOpen bool)) func() {
	g.nextListen++
	id := g.nextListen
	g.listeners[id] = fn
	return func() { delete(g.listeners, id) }
}

// AllOpen reports whether every registered panel is open. An empty group is
// never all open.
func (g *Group) AllOpen() bool {
	return g.allOpen
}

// AnyOpen reports whether at least one panel is open.
func (g *Group) AnyOpen() bool {
	return g.openCount > 0
}

// OpenCount returns the number of open panels.
func (g *Group) OpenCount() int {
	return g.openCount
}

// TotalCount returns the number of registered panels.
func (g *Group) TotalCount() int {
	return g.totalCount
}

// Target returns the last broadcast target.
func (g *Group) Target() bool {
	return g.target
}

// IsOpen returns the recorded state for id and whether id is registered.
func (g *Group) IsOpen(id string) (open, ok bool) {
	open, ok = g.panels[id]
	return open, ok
}

// Has reports whether id is registered.
func (g *Group) Has(id string) bool {
	_, ok := g.panels[id]
	return ok
}

func (g *Group) recompute() {
	allOpen := g.totalCount > 0 && g.openCount == g.totalCount
	if allOpen == g.allOpen {
		return
	}
	g.allOpen = allOpen
	for _, fn := range g.listeners {
		fn(allOpen)
	}
}
