// Package morse holds the fixed symbol table mapping dot/dash patterns to
// output characters. Lookups are exact-match only; there are no prefix or
// longest-match semantics.
package morse

// table covers letters, digits and common punctuation. Patterns are at most
// six symbols long.
var table = map[string]rune{
	".-":   'a',
	"-...": 'b',
	"-.-.": 'c',
	"-..":  'd',
	".":    'e',
	"..-.": 'f',
	"--.":  'g',
	"....": 'h',
	"..":   'i',
	".---": 'j',
	"-.-":  'k',
	".-..": 'l',
	"--":   'm',
	"-.":   'n',
	"---":  'o',
	".--.": 'p',
	"--.-": 'q',
	".-.":  'r',
	"...":  's',
	"-":    't',
	"..-":  'u',
	"...-": 'v',
	".--":  'w',
	"-..-": 'x',
	"-.--": 'y',
	"--..": 'z',

	".----": '1',
	"..---": '2',
	"...--": '3',
	"....-": '4',
	".....": '5',
	"-....": '6',
	"--...": '7',
	"---..": '8',
	"----.": '9',
	"-----": '0',

	".-.-.-": '.',
	"--..--": ',',
	"..--..": '?',
	"-..-.":  '/',
	"-....-": '-',
	"-...-":  '=',
}

// Lookup resolves a dot/dash pattern to its output character.
func Lookup(pattern string) (rune, bool) {
	r, ok := table[pattern]
	return r, ok
}

// Size returns the number of table entries.
func Size() int {
	return len(table)
}
