// Package jsident checks names that end up as JavaScript bindings in generated modules.
package jsident

var reserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"implements": true, "import": true, "in": true, "instanceof": true, "interface": true,
	"let": true, "new": true, "null": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true, "super": true,
	"switch": true, "this": true, "throw": true, "true": true, "try": true,
	"typeof": true, "var": true, "void": true, "while": true, "with": true,
	"yield": true, "arguments": true, "eval": true,
}

// IsReserved reports whether name cannot be used as a binding in strict mode module code
func IsReserved(name string) bool {
	return reserved[name]
}

// Valid reports whether name is an ASCII identifier usable as a module binding
func Valid(name string) bool {
	if name == "" || IsReserved(name) {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
