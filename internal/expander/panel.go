package expander

// Options configures a Panel.
type Options struct {
	// DefaultOpen is the initial state of an uncontrolled panel.
	DefaultOpen bool
	// Open makes the panel controlled: its state only changes through SetControlled.
	Open *bool
	// OnOpenChange is called with the requested state whenever the panel is toggled.
	OnOpenChange func(open bool)
}

// Panel is the local open state of a single collapsible region.
type Panel struct {
	id           string
	open         bool
	controlled   bool
	onOpenChange func(bool)

	group       *Group
	unsubscribe func()
	lastSeq     uint64
}

// NewPanel creates a detached panel.
func NewPanel(id string, opts Options) *Panel {
	p := &Panel{
		id:           id,
		open:         opts.DefaultOpen,
		onOpenChange: opts.OnOpenChange,
	}
	if opts.Open != nil {
		p.controlled = true
		p.open = *opts.Open
	}
	return p
}

// ID returns the panel identifier.
func (p *Panel) ID() string {
	return p.id
}

// TitleID is the identifier of the panel's toggle button.
func (p *Panel) TitleID() string {
	return p.id + "_title"
}

// ContentID is the identifier of the panel's content region.
func (p *Panel) ContentID() string {
	return p.id + "_content"
}

// IsOpen reports the current state.
func (p *Panel) IsOpen() bool {
	return p.open
}

// IsControlled reports whether the state is owned by the caller.
func (p *Panel) IsControlled() bool {
	return p.controlled
}

// Group returns the group the panel is attached to, or nil.
func (p *Panel) Group() *Group {
	return p.group
}

// Attach registers the panel with g and subscribes it to broadcasts.
// Attaching to another group detaches from the current one first.
func (p *Panel) Attach(g *Group) {
	if g == nil || g == p.group {
		return
	}
	p.Detach()
	p.group = g
	p.lastSeq = 0
	if p.id != "" {
		g.Register(p.id, p.open)
	}
	p.unsubscribe = g.Subscribe(p)
}

// Detach deregisters the panel from its group.
func (p *Panel) Detach() {
	if p.group == nil {
		return
	}
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	if p.id != "" {
		p.group.Unregister(p.id)
	}
	p.group = nil
}

// Toggle requests the opposite state. Uncontrolled panels flip themselves;
// controlled panels only notify OnOpenChange and wait for SetControlled.
func (p *Panel) Toggle() {
	next := !p.open
	if !p.controlled {
		p.setState(next)
	}
	if p.onOpenChange != nil {
		p.onOpenChange(next)
	}
}

// SetControlled updates a controlled panel with the caller's value. On an
// uncontrolled panel it behaves like a programmatic state change.
func (p *Panel) SetControlled(open bool) {
	p.setState(open)
}

// Rename moves the panel's group registration to a new id.
func (p *Panel) Rename(id string) {
	if id == p.id {
		return
	}
	if p.group != nil {
		if p.id != "" {
			p.group.Unregister(p.id)
		}
		if id != "" {
			p.group.Register(id, p.open)
		}
	}
	p.id = id
}

// OnBroadcast applies a group command: a panel whose state differs from the
// target toggles itself.
func (p *Panel) OnBroadcast(b Broadcast) {
	if b.Seq != 0 && b.Seq <= p.lastSeq {
		return
	}
	p.lastSeq = b.Seq
	if p.open != b.Target {
		p.Toggle()
	}
}

func (p *Panel) setState(open bool) {
	if p.open == open {
		return
	}
	p.open = open
	if p.group != nil && p.id != "" {
		p.group.Update(p.id, open)
	}
}
