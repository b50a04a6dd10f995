package ast

// Reserved lists the surface keywords; none of them may name a variable.
var Reserved = map[string]struct{}{
	"if":     {},
	"then":   {},
	"else":   {},
	"let":    {},
	"letrec": {},
	"in":     {},
	"fix":    {},
	"hd":     {},
	"tl":     {},
}

// IsNameStart reports whether r may begin a user identifier. Upper-case starts
// are kept free for names generated during substitution.
func IsNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z')
}

// IsNamePart reports whether r may continue a user identifier.
func IsNamePart(r rune) bool {
	return IsNameStart(r) || r == '\'' || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ValidName reports whether name is a user identifier: [a-z_][A-Za-z0-9_']*
// and not a keyword.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !IsNameStart(r) {
			return false
		}
		if i > 0 && !IsNamePart(r) {
			return false
		}
	}
	_, reserved := Reserved[name]
	return !reserved
}
