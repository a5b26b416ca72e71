// Package cards turns card image file names into Russian card names and
// supplies the keywords a reading is built around.
package cards

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	ordinalPrefix = regexp.MustCompile(`^(\d+)\s*[-_ ]\s*`)
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	spaces        = regexp.MustCompile(`\s+`)
	articlePrefix = regexp.MustCompile(`^(?i:the)\s+`)

	suitWord    = regexp.MustCompile(`(?i)\b(cups|wands|swords|pentacles)\b`)
	suitThenNum = regexp.MustCompile(`(?i)(cups|wands|swords|pentacles)\s*0?(\d{1,2})`)
	numThenSuit = regexp.MustCompile(`(?i)0?(\d{1,2})\s*(cups|wands|swords|pentacles)`)
	rankOfSuit  = regexp.MustCompile(`(?i)\b(ace|two|three|four|five|six|seven|eight|nine|ten|page|knight|queen|king)\s+of\s+(cups|wands|swords|pentacles)\b`)
)

// stem is a normalized file name together with the ordinal that was
// stripped from its front, if any.
type stem struct {
	name    string
	ordinal int
}

// rule is one naming convention. Rules are tried in order and the first one
// that matches decides the card name.
type rule struct {
	name  string
	match func(s stem) (string, bool)
}

var rules = []rule{
	{"major", matchMajor},
	{"major-article", matchMajorArticle},
	{"ordinal-suit", matchOrdinalSuit},
	{"suit-number", matchSuitNumber},
	{"rank-of-suit", matchRankOfSuit},
	{"major-folded", matchMajorFolded},
}

// foldedMajors is majors keyed by lowercase spelling.
var foldedMajors = func() map[string]string {
	m := make(map[string]string, len(majors))
	for k, v := range majors {
		m[strings.ToLower(k)] = v
	}
	return m
}()

// Resolve returns the Russian name for a card image stem. Stems that match no
// known convention come back normalized but untranslated.
func Resolve(raw string) string {
	label, _ := ResolveRule(raw)
	return label
}

// ResolveRule is Resolve that also reports which convention matched, or
// "fallback".
func ResolveRule(raw string) (label, ruleName string) {
	s := normalize(raw)
	for _, r := range rules {
		if label, ok := r.match(s); ok {
			return label, r.name
		}
	}
	return s.name, "fallback"
}

func normalize(raw string) stem {
	s := stem{name: strings.TrimSpace(raw)}

	if m := ordinalPrefix.FindStringSubmatch(s.name); m != nil {
		s.ordinal, _ = strconv.Atoi(m[1])
		s.name = s.name[len(m[0]):]
	}

	s.name = strings.NewReplacer("_", " ", "-", " ").Replace(s.name)
	s.name = camelBoundary.ReplaceAllString(s.name, "${1} ${2}")
	s.name = strings.TrimSpace(spaces.ReplaceAllString(s.name, " "))
	return s
}

func matchMajor(s stem) (string, bool) {
	label, ok := majors[s.name]
	return label, ok
}

// matchMajorArticle covers producers that are inconsistent about "The":
// "the Fool", "THE Tower".
func matchMajorArticle(s stem) (string, bool) {
	loc := articlePrefix.FindStringIndex(s.name)
	if loc == nil {
		return "", false
	}
	bare := s.name[loc[1]:]
	if label, ok := majors[bare]; ok {
		return label, true
	}
	label, ok := majors["The "+bare]
	return label, ok
}

// matchOrdinalSuit handles "02 Cups", "05 - Cups02" and "05 - 02Cups", where
// the stripped ordinal is the rank whatever number follows it. A spelled-out
// rank always wins over the ordinal.
func matchOrdinalSuit(s stem) (string, bool) {
	if s.ordinal == 0 || rankOfSuit.MatchString(s.name) {
		return "", false
	}
	if m := suitWord.FindStringSubmatch(s.name); m != nil {
		return minor(s.ordinal, m[1])
	}
	if m := suitThenNum.FindStringSubmatch(s.name); m != nil {
		return minor(s.ordinal, m[1])
	}
	if m := numThenSuit.FindStringSubmatch(s.name); m != nil {
		return minor(s.ordinal, m[2])
	}
	return "", false
}

// matchSuitNumber handles "Cups02", "02Cups" and "Cups 02".
func matchSuitNumber(s stem) (string, bool) {
	if m := suitThenNum.FindStringSubmatch(s.name); m != nil {
		n, _ := strconv.Atoi(m[2])
		if label, ok := minor(n, m[1]); ok {
			return label, true
		}
	}
	if m := numThenSuit.FindStringSubmatch(s.name); m != nil {
		n, _ := strconv.Atoi(m[1])
		return minor(n, m[2])
	}
	return "", false
}

// matchRankOfSuit handles "Two of Cups" and "Queen of Swords".
func matchRankOfSuit(s stem) (string, bool) {
	m := rankOfSuit.FindStringSubmatch(s.name)
	if m == nil {
		return "", false
	}
	return minor(rankWords[strings.ToLower(m[1])], m[2])
}

// matchMajorFolded is the last resort for majors written in a single case,
// such as "wheel_of_fortune" or "THE HERMIT".
func matchMajorFolded(s stem) (string, bool) {
	label, ok := foldedMajors[strings.ToLower(s.name)]
	return label, ok
}

func minor(rank int, suit string) (string, bool) {
	r, ok := ranks[rank]
	if !ok {
		return "", false
	}
	s, ok := suits[strings.ToLower(suit)]
	if !ok {
		return "", false
	}
	return r + " " + s, true
}
