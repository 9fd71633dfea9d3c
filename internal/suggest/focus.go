package suggest

// Focus is the keyboard cursor over a suggestion list of length n.
// Index is -1 when nothing is selected, otherwise in [0, n-1].
type Focus struct {
	index int
	n     int
}

// NewFocus returns a cursor over n items with nothing selected
func NewFocus(n int) Focus {
	return Focus{index: -1, n: n}
}

// Reset points the cursor at a new list and clears the selection
func (f *Focus) Reset(n int) {
	f.index = -1
	f.n = n
}

// Down moves to the next item, wrapping to the first
func (f *Focus) Down() {
	if f.n == 0 {
		return
	}
	f.index++
	if f.index >= f.n {
		f.index = 0
	}
}

// Up moves to the previous item, wrapping to the last
func (f *Focus) Up() {
	if f.n == 0 {
		return
	}
	f.index--
	if f.index < 0 {
		f.index = f.n - 1
	}
}

// Index returns the focused position or -1
func (f Focus) Index() int {
	return f.index
}

// Active reports whether item i is the single highlighted row
func (f Focus) Active(i int) bool {
	return f.index >= 0 && i == f.index
}

// List is the open/closed suggestion dropdown with its focus
type List struct {
	engine Engine
	items  []Suggestion
	focus  Focus
	open   bool
}

// NewList creates an empty, closed list using engine
func NewList(engine Engine) *List {
	return &List{engine: engine, focus: NewFocus(0)}
}

// Update recomputes suggestions for query. The focus always resets.
func (l *List) Update(query string, catalog []string) {
	l.items = l.engine.Suggest(query, catalog)
	l.focus.Reset(len(l.items))
	l.open = len(l.items) > 0
}

// Items returns the current suggestions
func (l *List) Items() []Suggestion {
	return l.items
}

// Open reports whether the dropdown is shown
func (l *List) Open() bool {
	return l.open
}

// Focus returns the focus cursor
func (l *List) Focus() Focus {
	return l.focus
}

// Down moves the focus down when the list is open
func (l *List) Down() {
	if l.open {
		l.focus.Down()
	}
}

// Up moves the focus up when the list is open
func (l *List) Up() {
	if l.open {
		l.focus.Up()
	}
}

// Enter commits the focused suggestion. ok is false when nothing is focused,
// in which case Enter belongs to the caller (it requests recommendations).
func (l *List) Enter() (text string, ok bool) {
	if !l.open || l.focus.Index() < 0 {
		return "", false
	}
	text = l.items[l.focus.Index()].Text
	l.Close()
	return text, true
}

// Pick commits item i directly, the equivalent of clicking it
func (l *List) Pick(i int) (text string, ok bool) {
	if !l.open || i < 0 || i >= len(l.items) {
		return "", false
	}
	text = l.items[i].Text
	l.Close()
	return text, true
}

// Close hides the dropdown and clears the focus
func (l *List) Close() {
	l.open = false
	l.focus.Reset(len(l.items))
}
