package components

// LabelMode controls whether a form label is drawn or only announced.
type LabelMode int

const (
	LabelVisible LabelMode = iota
	LabelHidden
)

// Status is the validation state of a form control.
type Status int

const (
	StatusDefault Status = iota
	StatusError
	StatusSuccess
)

// LabelText names a form control.
type LabelText struct {
	BaseComponent
	id           string
	text         string
	mode         LabelMode
	optionalText string
}

// NewLabelText creates a visible label.
func NewLabelText(text string) *LabelText {
	return &LabelText{BaseComponent: NewBaseComponent(), text: text}
}

// WithID sets the element id.
func (l *LabelText) WithID(id string) *LabelText {
	l.id = id
	return l
}

// WithMode hides or shows the label.
func (l *LabelText) WithMode(mode LabelMode) *LabelText {
	l.mode = mode
	return l
}

// WithOptionalText appends a marker such as "optional" in parentheses.
func (l *LabelText) WithOptionalText(text string) *LabelText {
	l.optionalText = text
	return l
}

// Text returns the label text.
func (l *LabelText) Text() string {
	return l.text
}

func (l *LabelText) View() string {
	return l.ViewWithContext(DefaultContext())
}

func (l *LabelText) ViewWithContext(ctx RenderContext) string {
	if l.mode == LabelHidden || l.text == "" {
		return ""
	}
	style := l.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, TypographyBodySemiBold))
	out := style.Render(l.text)
	if l.optionalText != "" {
		optional := TypographyStyle(ctx.Theme, TypographyBodySmall).Foreground(ctx.Theme.Palette.Depth.Contrast)
		out += " " + optional.Render("("+l.optionalText+")")
	}
	return out
}

func (l *LabelText) Accessibility() Accessibility {
	label := l.text
	if l.optionalText != "" {
		label += " (" + l.optionalText + ")"
	}
	return Accessibility{ID: l.id, Label: label}
}

// HintText gives extra guidance under a label.
type HintText struct {
	BaseComponent
	id   string
	text string
}

// NewHintText creates hint text with the given id.
func NewHintText(id, text string) *HintText {
	return &HintText{BaseComponent: NewBaseComponent(), id: id, text: text}
}

// ID returns the id controls reference in DescribedBy.
func (h *HintText) ID() string {
	return h.id
}

func (h *HintText) View() string {
	return h.ViewWithContext(DefaultContext())
}

func (h *HintText) ViewWithContext(ctx RenderContext) string {
	if h.text == "" {
		return ""
	}
	style := h.ComputeStyle(ctx.Theme).
		Inherit(TypographyStyle(ctx.Theme, TypographyBodySmall)).
		Foreground(ctx.Theme.Palette.Depth.Contrast)
	if w := ctx.Width(); w > 0 {
		style = style.Width(w)
	}
	return style.Render(h.text)
}

func (h *HintText) Accessibility() Accessibility {
	return Accessibility{ID: h.id, Label: h.text}
}

// StatusText shows a validation message. Error text is prefixed with an
// icon and announced assertively.
type StatusText struct {
	BaseComponent
	id     string
	text   string
	status Status
}

// NewStatusText creates status text with the given id.
func NewStatusText(id, text string, status Status) *StatusText {
	return &StatusText{BaseComponent: NewBaseComponent(), id: id, text: text, status: status}
}

// ID returns the id controls reference in DescribedBy.
func (s *StatusText) ID() string {
	return s.id
}

// Status returns the validation state.
func (s *StatusText) Status() Status {
	return s.status
}

func (s *StatusText) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *StatusText) ViewWithContext(ctx RenderContext) string {
	if s.text == "" {
		return ""
	}
	style := s.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(s.status); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	content := s.text
	switch s.status {
	case StatusError:
		content = IconGlyph("error") + " " + content
	case StatusSuccess:
		content = IconGlyph("check") + " " + content
	}
	return style.Render(content)
}

func (s *StatusText) Accessibility() Accessibility {
	a := Accessibility{ID: s.id, Label: s.text, Live: "polite"}
	if s.status == StatusError {
		a.Live = "assertive"
	}
	return a
}

// DescribedBy returns the ids of the hint and status texts that are set, in
// the order a screen reader should read them.
func DescribedBy(hint *HintText, status *StatusText) []string {
	var ids []string
	if status != nil && status.text != "" {
		ids = append(ids, status.id)
	}
	if hint != nil && hint.text != "" {
		ids = append(ids, hint.id)
	}
	return ids
}
