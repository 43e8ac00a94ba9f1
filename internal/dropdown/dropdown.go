// Package dropdown implements a menu that opens beneath a trigger and offers
// a list of options. Each option either navigates to a path or runs an
// action. The dropdown closes itself when the user clicks elsewhere or the
// terminal is resized, through subscriptions to a uievent.Source that the
// owner must release with Dispose.
package dropdown

import (
	"github.com/atomicstack/item-directory/internal/logging/events"
	"github.com/atomicstack/item-directory/internal/uievent"
	tea "github.com/charmbracelet/bubbletea"
)

// Target is either a Link or an Action.
type Target interface {
	isTarget()
}

// Link navigates to Path.
type Link struct {
	Path string
}

// Action runs a command in place.
type Action struct {
	Run func() tea.Cmd
}

func (Link) isTarget()   {}
func (Action) isTarget() {}

// Style selects how an option is drawn.
type Style int

const (
	Normal Style = iota
	Danger
)

// Option is one entry of the menu.
type Option struct {
	Label  string
	Icon   string
	Target Target
	Style  Style
}

// Choice is the outcome of choosing an option. Exactly one of Path and Cmd
// is meaningful, depending on the option's target.
type Choice struct {
	Label string
	Path  string
	Cmd   tea.Cmd
}

// IsLink reports whether the choice navigates somewhere.
func (c Choice) IsLink() bool { return c.Path != "" }

// Dropdown holds the open state, the options and the highlighted row.
type Dropdown struct {
	content string
	options []Option
	open    bool
	cursor  int
	subs    []*uievent.Subscription
}

// New builds a closed dropdown. Nil options are skipped so callers can
// include conditional entries inline.
func New(content string, options ...*Option) *Dropdown {
	d := &Dropdown{content: content}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		d.options = append(d.options, *opt)
	}
	return d
}

// When returns opt if cond holds, nil otherwise.
func When(cond bool, opt Option) *Option {
	if !cond {
		return nil
	}
	return &opt
}

func (d *Dropdown) Content() string   { return d.content }
func (d *Dropdown) Options() []Option { return append([]Option(nil), d.options...) }
func (d *Dropdown) Len() int          { return len(d.options) }
func (d *Dropdown) IsOpen() bool      { return d.open }
func (d *Dropdown) Cursor() int       { return d.cursor }

// Toggle flips the open state.
func (d *Dropdown) Toggle() {
	if d.open {
		d.Close()
		return
	}
	d.Open()
}

// Open shows the menu with the first option highlighted.
func (d *Dropdown) Open() {
	d.open = true
	d.cursor = 0
	events.Dropdown.Toggle(true, len(d.options))
}

// Close hides the menu.
func (d *Dropdown) Close() {
	if !d.open {
		return
	}
	d.open = false
	events.Dropdown.Toggle(false, len(d.options))
}

// MoveCursor shifts the highlight by delta, clamped to the options.
func (d *Dropdown) MoveCursor(delta int) {
	if len(d.options) == 0 {
		d.cursor = 0
		return
	}
	d.cursor += delta
	if d.cursor < 0 {
		d.cursor = 0
	}
	if d.cursor > len(d.options)-1 {
		d.cursor = len(d.options) - 1
	}
}

// SetCursor highlights index, clamped to the options.
func (d *Dropdown) SetCursor(index int) {
	d.cursor = 0
	d.MoveCursor(index)
}

// Choose resolves the highlighted option and closes the menu. ok is false
// when the menu is closed or empty.
func (d *Dropdown) Choose() (choice Choice, ok bool) {
	if !d.open || len(d.options) == 0 {
		return Choice{}, false
	}
	opt := d.options[d.cursor]
	d.Close()
	choice = Choice{Label: opt.Label}
	switch target := opt.Target.(type) {
	case Link:
		choice.Path = target.Path
	case Action:
		if target.Run != nil {
			choice.Cmd = target.Run()
		}
	}
	events.Dropdown.Choose(opt.Label, choice.Path)
	return choice, true
}

// Mount subscribes to click-outside and resize events, both of which close
// the menu. Mounting twice replaces the earlier subscriptions.
func (d *Dropdown) Mount(source *uievent.Source) {
	d.Dispose()
	if source == nil {
		return
	}
	d.subs = []*uievent.Subscription{
		source.Subscribe(uievent.ClickOutside, func(uievent.Event) { d.dismiss("click-outside") }),
		source.Subscribe(uievent.Resize, func(uievent.Event) { d.dismiss("resize") }),
	}
}

// Dispose releases the subscriptions taken by Mount.
func (d *Dropdown) Dispose() {
	for _, sub := range d.subs {
		sub.Unsubscribe()
	}
	d.subs = nil
}

func (d *Dropdown) dismiss(reason string) {
	if !d.open {
		return
	}
	events.Dropdown.Dismiss(reason)
	d.Close()
}
