package main

import "strings"

// flagArity describes how many following tokens a flag consumes.
type flagArity int

const (
	arityMany     flagArity = iota // every following non-flag token
	arityOptional                  // zero or one following non-flag token
)

// multiValueFlags are flags pflag cannot parse natively: --add and --dl take
// a variable number of space-separated values, --vcard takes an optional one.
var multiValueFlags = map[string]flagArity{
	"--add":   arityMany,
	"--dl":    arityMany,
	"--vcard": arityOptional,
}

// normalizeArgs rewrites "--add Jane Doe +1000" into repeated
// "--add=Jane --add=Doe --add=+1000" and "--vcard out.vcf" into
// "--vcard=out.vcf" so cobra can parse them. Everything after "--" is left
// alone. A many-valued flag with no values is dropped, and a repeated
// many-valued flag replaces the values of its earlier occurrence.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	emitted := make(map[string][]int)
	dropped := make(map[int]bool)
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "--" {
			out = append(out, args[i:]...)
			break
		}
		arity, ok := multiValueFlags[tok]
		if !ok {
			out = append(out, tok)
			continue
		}

		switch arity {
		case arityMany:
			for _, j := range emitted[tok] {
				dropped[j] = true
			}
			emitted[tok] = nil
			for i+1 < len(args) && isValueToken(args[i+1]) {
				i++
				emitted[tok] = append(emitted[tok], len(out))
				out = append(out, tok+"="+args[i])
			}
		case arityOptional:
			if i+1 < len(args) && isValueToken(args[i+1]) {
				i++
				out = append(out, tok+"="+args[i])
			} else {
				out = append(out, tok)
			}
		}
	}
	if len(dropped) == 0 {
		return out
	}

	kept := out[:0:0]
	for j, tok := range out {
		if !dropped[j] {
			kept = append(kept, tok)
		}
	}
	return kept
}

// isValueToken reports whether tok is a value rather than a flag.
// Negative numbers such as "-5" count as values.
func isValueToken(tok string) bool {
	if tok == "--" {
		return false
	}
	if !strings.HasPrefix(tok, "-") || tok == "-" {
		return true
	}
	return len(tok) > 1 && tok[1] >= '0' && tok[1] <= '9'
}
