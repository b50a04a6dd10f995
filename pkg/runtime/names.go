package runtime

import "strconv"

// FreshPrefix starts with an upper-case letter; the lexer only admits user
// identifiers that start with a lower-case letter or underscore.
const FreshPrefix = "Var"

// NameGenerator produces identifiers that cannot collide with user names.
type NameGenerator struct {
	counter uint64
}

// NewNameGenerator returns a generator whose first name is Var1.
func NewNameGenerator() *NameGenerator {
	return &NameGenerator{}
}

// Fresh returns the next unused name.
func (g *NameGenerator) Fresh() string {
	g.counter++
	return FreshPrefix + strconv.FormatUint(g.counter, 10)
}

// Issued reports how many names have been handed out.
func (g *NameGenerator) Issued() uint64 {
	return g.counter
}

