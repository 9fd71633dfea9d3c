// Package slider does the position arithmetic for the horizontal card
// carousel. Units are terminal columns.
package slider

// DefaultCardWidth is used until a card has been measured
const DefaultCardWidth = 26

// gap is the space between two cards
const gap = 2

// Slider tracks how far the card strip is scrolled
type Slider struct {
	position  int
	cardWidth int
	cards     int
	container int
}

// New creates a slider with the given step width
func New(cardWidth int) *Slider {
	if cardWidth <= 0 {
		cardWidth = DefaultCardWidth
	}
	return &Slider{cardWidth: cardWidth}
}

// Measure updates the step width from a rendered card and its margins
func (s *Slider) Measure(renderedWidth, marginLeft, marginRight int) {
	w := renderedWidth + marginLeft + marginRight + gap
	if w <= 0 || w == s.cardWidth {
		return
	}
	// keep the same first card in view
	offset := s.Offset()
	s.cardWidth = w
	s.position = offset * w
}

// Resize records the visible container width
func (s *Slider) Resize(containerWidth int) {
	s.container = containerWidth
	if max := s.MaxPosition(); s.position > max {
		s.position = clampLow(max)
	}
}

// SetCards loads a new card set and scrolls back to the start
func (s *Slider) SetCards(n int) {
	s.cards = n
	s.position = 0
}

// CardWidth returns the step width
func (s *Slider) CardWidth() int {
	return s.cardWidth
}

// Visible returns how many whole cards fit in the container
func (s *Slider) Visible() int {
	if s.cardWidth <= 0 {
		return 0
	}
	return s.container / s.cardWidth
}

// MaxPosition is the furthest the strip may scroll; it can be zero or negative
// when every card fits
func (s *Slider) MaxPosition() int {
	return (s.cards - s.Visible()) * s.cardWidth
}

// Next scrolls one card forward if there is anything left to show
func (s *Slider) Next() bool {
	if s.position < s.MaxPosition() {
		s.position += s.cardWidth
		return true
	}
	return false
}

// Prev scrolls one card back
func (s *Slider) Prev() bool {
	if s.position > 0 {
		s.position -= s.cardWidth
		return true
	}
	return false
}

// Position returns the scroll offset in columns
func (s *Slider) Position() int {
	return s.position
}

// Offset returns the index of the first visible card
func (s *Slider) Offset() int {
	if s.cardWidth <= 0 {
		return 0
	}
	return s.position / s.cardWidth
}

// Window returns the half-open range of card indices to draw
func (s *Slider) Window() (start, end int) {
	start = s.Offset()
	visible := s.Visible()
	if visible < 1 {
		visible = 1
	}
	end = start + visible
	if end > s.cards {
		end = s.cards
	}
	if start > end {
		start = end
	}
	return start, end
}

func clampLow(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
