package extract

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Destination groups whose content is metadata, not document text.
var rtfSkipGroups = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"header":     true,
	"footer":     true,
}

// extractRTF converts RTF markup to plain text: control words for breaks map
// to whitespace, escaped characters are decoded, metadata groups and all
// other control words are dropped.
func extractRTF(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	src := string(data)
	if !strings.HasPrefix(src, `{\rtf`) {
		return "", fmt.Errorf("missing rtf header")
	}

	var sb strings.Builder
	depth := 0
	skipDepth := 0 // depth of the skipped destination group, 0 when outside

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '{':
			depth++
			// Groups opening with a discarded destination, e.g. {\fonttbl
			// or {\*\generator, are dropped wholesale.
			if i+1 < len(src) && src[i+1] == '\\' {
				name, _ := readControlWord(src, i+2)
				if skipDepth == 0 && (rtfSkipGroups[name] || name == "*") {
					skipDepth = depth
				}
			}
		case '}':
			if skipDepth == depth {
				skipDepth = 0
			}
			depth--
		case '\\':
			word, next := readControlWord(src, i+1)
			if word == "" {
				// Escaped literal: \\, \{, \}.
				if i+1 < len(src) && skipDepth == 0 {
					sb.WriteByte(src[i+1])
				}
				i++
				continue
			}
			if skipDepth == 0 {
				switch word {
				case "par", "line", "row":
					sb.WriteByte('\n')
				case "tab", "cell":
					sb.WriteByte('\t')
				case "'":
					// Hex escape \'hh.
					if next+2 <= len(src) {
						if v, err := strconv.ParseUint(src[next:next+2], 16, 8); err == nil {
							sb.WriteByte(byte(v))
						}
						next += 2
					}
				case "u":
					// \uN? unicode escape with one fallback character.
					if v, width := readSignedInt(src, next); width > 0 {
						sb.WriteRune(rune(uint16(v)))
						next += width
						if next < len(src) && src[next] == '?' {
							next++
						}
					}
				}
			}
			// A control word eats one trailing space.
			if next < len(src) && src[next] == ' ' {
				next++
			}
			i = next - 1
		case '\r', '\n':
			// Raw line breaks in the file are not document content.
		default:
			if skipDepth == 0 {
				sb.WriteByte(c)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// readControlWord parses the control word starting at pos, the first byte
// after a backslash. It returns the bare word (numeric parameters stripped,
// except \u which keeps its parameter out of the word) and the index just
// past the word and parameter. Escaped literal characters return "".
func readControlWord(src string, pos int) (string, int) {
	if pos >= len(src) {
		return "", pos
	}
	i := pos
	for i < len(src) && isASCIILetter(src[i]) {
		i++
	}
	if i == pos {
		// Symbol controls \* and \' carry meaning, the rest are literals.
		if src[i] == '*' || src[i] == '\'' {
			return string(src[i]), i + 1
		}
		return "", pos
	}
	word := src[pos:i]
	if word == "u" {
		return "u", i
	}
	// Skip an optional numeric parameter, e.g. \fs24.
	if i < len(src) && src[i] == '-' {
		i++
	}
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	return word, i
}

func readSignedInt(src string, pos int) (int, int) {
	i := pos
	if i < len(src) && src[i] == '-' {
		i++
	}
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i == pos || (i == pos+1 && src[pos] == '-') {
		return 0, 0
	}
	v, err := strconv.Atoi(src[pos:i])
	if err != nil {
		return 0, 0
	}
	return v, i - pos
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
