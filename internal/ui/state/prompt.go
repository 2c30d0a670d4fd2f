package state

import "unicode"

// Prompt is an editable single-line text input with a rune caret.
type Prompt struct {
	Text   string
	Cursor int
}

// Pos returns the caret clamped to the text.
func (p Prompt) Pos() int {
	n := len([]rune(p.Text))
	if p.Cursor < 0 {
		return 0
	}
	if p.Cursor > n {
		return n
	}
	return p.Cursor
}

// Set replaces the text and caret, clamping the caret.
func (p *Prompt) Set(text string, cursor int) {
	p.Text = text
	p.Cursor = cursor
	p.Cursor = p.Pos()
}

// Split returns the text before the caret, the rune under it and the remainder.
func (p Prompt) Split() (before, at, after string) {
	runes := []rune(p.Text)
	pos := p.Pos()
	before = string(runes[:pos])
	if pos < len(runes) {
		at = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return before, at, after
}

// Insert inserts text at the caret.
func (p *Prompt) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Text)
	pos := p.Pos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the caret.
func (p *Prompt) DeleteRuneBackward() bool {
	runes := []rune(p.Text)
	pos := p.Pos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	p.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the caret.
func (p *Prompt) DeleteWordBackward() bool {
	runes := []rune(p.Text)
	pos := p.Pos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i:i], runes[pos:]...)
	p.Set(string(updated), i)
	return true
}

// Clear empties the prompt.
func (p *Prompt) Clear() bool {
	if p.Text == "" && p.Cursor == 0 {
		return false
	}
	p.Set("", 0)
	return true
}

// MoveStart moves the caret to the start.
func (p *Prompt) MoveStart() bool {
	if p.Pos() == 0 {
		return false
	}
	p.Cursor = 0
	return true
}

// MoveEnd moves the caret to the end.
func (p *Prompt) MoveEnd() bool {
	end := len([]rune(p.Text))
	if p.Pos() == end {
		return false
	}
	p.Cursor = end
	return true
}

// MoveWordBackward moves the caret to the start of the previous word.
func (p *Prompt) MoveWordBackward() bool {
	pos := p.Pos()
	i := wordStart([]rune(p.Text), pos)
	if i == pos {
		return false
	}
	p.Cursor = i
	return true
}

// MoveWordForward moves the caret past the next word and its trailing spaces.
func (p *Prompt) MoveWordForward() bool {
	runes := []rune(p.Text)
	pos := p.Pos()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	p.Cursor = i
	return true
}

// MoveRuneBackward moves the caret one rune left.
func (p *Prompt) MoveRuneBackward() bool {
	pos := p.Pos()
	if pos == 0 {
		return false
	}
	p.Cursor = pos - 1
	return true
}

// MoveRuneForward moves the caret one rune right.
func (p *Prompt) MoveRuneForward() bool {
	pos := p.Pos()
	if pos >= len([]rune(p.Text)) {
		return false
	}
	p.Cursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
