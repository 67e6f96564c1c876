package rules

import (
	"regexp"
	"strings"
)

type intent int

const (
	intentNone intent = iota
	intentComplaint
	intentBook
	intentAvailability
	intentRoomTypes
	intentAttractions
	intentGreeting
)

// Checked in order; the first match wins.
var intentPatterns = []struct {
	intent intent
	re     *regexp.Regexp
}{
	{intentComplaint, regexp.MustCompile(`\b(complain\w*|manager|angry|furious|terrible|awful|dirty|broken|refund|unacceptable|rude|human|speak to (someone|a person))\b`)},
	{intentBook, regexp.MustCompile(`\b(book\w*|reserve|reservation)\b`)},
	{intentAvailability, regexp.MustCompile(`\b(availab\w*|vacan\w*|free rooms?|any rooms?)\b`)},
	{intentRoomTypes, regexp.MustCompile(`\b(room types?|types of rooms?|what rooms|which rooms|prices?|rates?|cost)\b`)},
	{intentAttractions, regexp.MustCompile(`\b(attractions?|nearby|things to do|sightseeing|visit|explore)\b`)},
	{intentGreeting, regexp.MustCompile(`\b(hi|hello|hey|help|start|good (morning|afternoon|evening))\b`)},
}

var isoDate = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

func classify(text string) intent {
	lower := strings.ToLower(text)
	for _, p := range intentPatterns {
		if p.re.MatchString(lower) {
			return p.intent
		}
	}
	return intentNone
}

// extractDates returns the first two YYYY-MM-DD dates in text.
func extractDates(text string) (string, string, bool) {
	found := isoDate.FindAllString(text, 2)
	if len(found) < 2 {
		return "", "", false
	}
	return found[0], found[1], true
}

// extractRoomType returns the first known label mentioned in text, in the
// label's canonical spelling.
func extractRoomType(text string, labels []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, label := range labels {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(label)) + `\b`)
		if re.MatchString(lower) {
			return label, true
		}
	}
	return "", false
}

func extractArea(text string, areas []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, area := range areas {
		if strings.Contains(lower, area) {
			return area, true
		}
	}
	return "", false
}
