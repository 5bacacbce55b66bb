package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The extractor is a best-effort text classifier, not scheduling logic: it
// recognizes a handful of common phrasings and otherwise leaves the text
// alone. Patterns are tried most-specific first so "at 5pm" wins over a bare
// "5pm" inside the same phrase.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+(\d{1,2}):(\d{2})\s*(am|pm)?\b`),
	regexp.MustCompile(`(?i)\bat\s+(\d{1,2})()\s*(am|pm)?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})()\s*(am|pm)\b`),
}

// ExtractTime scans free text for a time phrase. When found it returns the
// 24-hour HH:mm value and the text with the phrase removed; otherwise it
// returns the input unchanged with found = false.
func ExtractTime(text string) (clock, rest string, found bool) {
	for _, pattern := range timePatterns {
		loc := pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		groups := pattern.FindStringSubmatch(text)
		hour, err := strconv.Atoi(groups[1])
		if err != nil {
			continue
		}
		minute := 0
		if groups[2] != "" {
			minute, err = strconv.Atoi(groups[2])
			if err != nil {
				continue
			}
		}
		meridiem := strings.ToLower(groups[3])
		// A bare "at 5" with no am/pm marker and no minutes is too ambiguous
		// to strip; require either a colon or a meridiem.
		if meridiem == "" && groups[2] == "" {
			continue
		}
		switch meridiem {
		case "pm":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour == 12 {
				hour = 0
			}
		default:
			if hour > 23 {
				continue
			}
		}
		if minute > 59 {
			continue
		}
		stripped := text[:loc[0]] + text[loc[1]:]
		stripped = strings.Join(strings.Fields(stripped), " ")
		return fmt.Sprintf("%02d:%02d", hour, minute), stripped, true
	}
	return "", text, false
}
