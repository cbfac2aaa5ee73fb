package slug

import "strings"

// folded maps characters common in Nordic player and club names onto
// their ASCII slug form.
var folded = map[rune]string{
	'å': "a", 'ä': "a", 'ö': "o",
	'Å': "a", 'Ä': "a", 'Ö': "o",
	'ø': "o", 'Ø': "o", 'æ': "ae", 'Æ': "ae",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'É': "e", 'È': "e", 'Ê': "e", 'Ë': "e",
	'á': "a", 'à': "a", 'â': "a", 'ã': "a",
	'Á': "a", 'À': "a", 'Â': "a", 'Ã': "a",
	'í': "i", 'ì': "i", 'î': "i", 'ï': "i",
	'Í': "i", 'Ì': "i", 'Î': "i", 'Ï': "i",
	'ó': "o", 'ò': "o", 'ô': "o", 'õ': "o",
	'Ó': "o", 'Ò': "o", 'Ô': "o", 'Õ': "o",
	'ú': "u", 'ù': "u", 'û': "u", 'ü': "u",
	'Ú': "u", 'Ù': "u", 'Û': "u", 'Ü': "u",
	'ñ': "n", 'Ñ': "n", 'ç': "c", 'Ç': "c",
	'ý': "y", 'Ý': "y", 'š': "s", 'Š': "s",
	'ž': "z", 'Ž': "z", 'ć': "c", 'Ć': "c",
	'č': "c", 'Č': "c", 'đ': "d", 'Đ': "d",
	'ß': "ss",
}

// Make lowercases a name, folds diacritics, and joins the remaining
// word runs with single hyphens: "Isak Bergmann Jóhannesson" ->
// "isak-bergmann-johannesson".
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := true
	for _, r := range name {
		if repl, ok := folded[r]; ok {
			b.WriteString(repl)
			lastHyphen = false
			continue
		}

		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
