package classify

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	protocolRe  = regexp.MustCompile(`https?://`)
	delimiterRe = regexp.MustCompile(`[*/_-]`)
	suffixRe    = regexp.MustCompile(`\b[a-z0-9]+\.(com|dk|io|net|org|se|co)\b`)
	junkRe      = regexp.MustCompile(`[^a-z0-9æøå \s]`)
	spacesRe    = regexp.MustCompile(`\s{2,}`)
)

// CleanDescription turns a raw bank statement description into a
// presentable subscription title:
//
//	"OPENAI *CHATGPT"      -> "Openai Chatgpt"
//	"TRYG FORSIKRING A/S"  -> "Tryg Forsikring A S"
func CleanDescription(desc string) string {
	text := strings.ToLower(strings.TrimSpace(desc))
	if text == "" {
		return "Ukendt"
	}

	text = protocolRe.ReplaceAllString(text, "")
	text = delimiterRe.ReplaceAllString(text, " ")
	text = suffixRe.ReplaceAllString(text, "")
	text = junkRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))
	if text == "" {
		return "Ukendt"
	}
	return cases.Title(language.Danish).String(text)
}
