package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"golang.org/x/net/html"
)

const maxLabelLength = 80

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

func writeClipboardText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// describeElement is what "copy" puts on the clipboard.
func describeElement(e Element) string {
	return fmt.Sprintf("%s %q x=%g y=%g w=%g h=%g", e.Kind, e.Label, e.X, e.Y, e.Width, e.Height)
}

// clipboardLabel turns arbitrary clipboard content into a single line label.
func clipboardLabel(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = extractTextFromHTML(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	line = strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(line))
	return truncate(line, maxLabelLength)
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") || strings.Contains(t, "<div") || strings.Contains(t, "<span") || strings.Contains(t, "<p"))
}

func extractTextFromHTML(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				skip++
			case "br", "p", "div", "li":
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if n := string(name); (n == "script" || n == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// stripRTF drops control words and groups, keeping plain text. \par and
// \line become newlines and \'hh hex escapes are decoded.
func stripRTF(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			if next == '\'' && i+3 < len(runes) {
				if val, err := strconv.ParseUint(string(runes[i+2:i+4]), 16, 8); err == nil {
					// \'hh is a code page byte; read it as Latin-1
					b.WriteRune(rune(val))
					i += 3
					continue
				}
			}
			if next == '\\' || next == '{' || next == '}' {
				b.WriteRune(next)
				i++
				continue
			}
			j := i + 1
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			word := string(runes[i+1 : j])
			for j < len(runes) && (runes[j] == '-' || unicode.IsDigit(runes[j])) {
				j++
			}
			if j < len(runes) && runes[j] == ' ' {
				j++
			}
			if word == "par" || word == "line" {
				b.WriteByte('\n')
			}
			i = j - 1
		case '\r', '\n':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
