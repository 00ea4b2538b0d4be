package strand

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Returned when trying to create a source from empty font data.
const ErrEmptyFontData errMsg = "strand: empty font data"
