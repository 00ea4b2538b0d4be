package markup

// A color stack for markup scoping. The zero value is usable, with
// a transparent base color, but stacks are typically initialized
// through [ColorStack.Reset]() with the text's base color.
//
// Each push saves the active color before activating the new one,
// and each pop restores the most recently saved color. Popping an
// empty stack is not an error, it activates the base color.
type ColorStack struct {
	base Color
	current Color
	saved []Color
}

// Clears the stack and sets the base color as the active color.
func (self *ColorStack) Reset(base Color) {
	self.base = base
	self.current = base
	self.saved = self.saved[ : 0]
}

// Saves the active color and activates the given one.
func (self *ColorStack) Push(clr Color) {
	self.saved = append(self.saved, self.current)
	self.current = clr
}

// Closes the innermost scope. See [ColorStack] for the exact rules.
func (self *ColorStack) Pop() {
	last := len(self.saved) - 1
	if last < 0 {
		self.current = self.base
		return
	}
	self.current = self.saved[last]
	self.saved = self.saved[ : last]
}

// Returns the active color.
func (self *ColorStack) Current() Color { return self.current }

// Returns the base color given to [ColorStack.Reset]().
func (self *ColorStack) Base() Color { return self.base }

// Returns the number of saved entries.
func (self *ColorStack) Depth() int { return len(self.saved) }
