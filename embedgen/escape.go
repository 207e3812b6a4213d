package embedgen

import "strings"

// Only backslash, double quote and newline need rewriting: the definitions
// artifact embeds sources as interpreted string literals, which take every
// other character as-is.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// Escape rewrites s so it can sit between double quotes in a generated file.
// Compiling the artifact undoes the rewrite exactly.
func Escape(s string) string {
	return escaper.Replace(s)
}
