package codegen

// goKeywords are the reserved words that typeName/fieldName must dodge
// when a PGN/field Id collides with one, mirroring the is_keyword guard in
// the original codegen's naming helpers.
var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
}

func isKeyword(s string) bool {
	return goKeywords[s]
}
