// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package sentiment scores free text on a happiness scale.
//
// Score is a pure function: deterministic, no I/O, no shared mutable state,
// safe for concurrent use. It blends four independent passes (token lexicon,
// phrase patterns, context keywords, emoji) into a compound score in [-1, 1],
// which maps linearly onto the [0, 100] happiness scale.
package sentiment

import (
	"regexp"
	"strings"
	"unicode"
)

// Blend weights of the four scoring passes.
const (
	weightLexicon = 0.4
	weightPattern = 0.3
	weightContext = 0.2
	weightEmoji   = 0.1
)

// Label thresholds on the [0, 100] happiness scale.
const (
	positiveThreshold = 55.0
	negativeThreshold = 45.0
)

// negationWindow is how many tokens back a negation or intensifier
// still modifies a sentiment word.
const negationWindow = 3

// Result is the outcome of scoring one text.
type Result struct {
	// Compound is the blended sentiment score in [-1, 1].
	Compound float64

	// Value is Compound mapped onto the [0, 100] happiness scale.
	Value float64

	// Label is positive, neutral, or negative.
	Label string
}

var (
	urlRe     = regexp.MustCompile(`https?://\S+`)
	mentionRe = regexp.MustCompile(`@\w+`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Score analyzes text and returns its sentiment. Empty or whitespace-only
// input scores neutral (compound 0, value 50).
func Score(text string) Result {
	cleaned := normalize(text)
	if cleaned == "" {
		return Result{Compound: 0, Value: 50, Label: "neutral"}
	}

	tokens := tokenize(cleaned)

	compound := weightLexicon*lexiconScore(tokens) +
		weightPattern*patternScore(cleaned) +
		weightContext*contextScore(tokens) +
		weightEmoji*emojiScore(text)
	compound = clamp(compound, -1, 1)

	value := ValueFromCompound(compound)
	return Result{Compound: compound, Value: value, Label: LabelForValue(value)}
}

// ValueFromCompound maps a compound score in [-1, 1] onto [0, 100].
func ValueFromCompound(compound float64) float64 {
	return clamp((compound+1)*50, 0, 100)
}

// LabelForValue classifies a happiness value: >= 55 positive,
// <= 45 negative, otherwise neutral.
func LabelForValue(value float64) string {
	switch {
	case value >= positiveThreshold:
		return "positive"
	case value <= negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// normalize lowercases the text and strips URLs and mentions. Hashtag
// content is kept, the marker dropped.
func normalize(text string) string {
	s := strings.ToLower(text)
	s = urlRe.ReplaceAllString(s, "")
	s = mentionRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "#", "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// tokenize splits normalized text into word tokens, keeping apostrophes
// so contractions like "don't" survive.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func isNegation(token string) bool {
	if _, ok := negations[token]; ok {
		return true
	}
	return strings.HasSuffix(token, "n't")
}

func isIntensifier(token string) bool {
	_, ok := intensifiers[token]
	return ok
}

// lexiconScore averages the valence of lexicon hits, flipping and damping
// a hit when a negation precedes it within the window and amplifying it
// when an intensifier does.
func lexiconScore(tokens []string) float64 {
	var sum float64
	var hits int

	for i, token := range tokens {
		valence, ok := wordValence[token]
		if !ok {
			continue
		}

		for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
			if isNegation(tokens[j]) {
				valence *= -0.5
				break
			}
			if isIntensifier(tokens[j]) {
				valence *= 1.5
			}
		}

		sum += valence
		hits++
	}

	if hits == 0 {
		return 0
	}
	return clamp(sum/float64(hits), -1, 1)
}

// patternScore matches multi-word phrases, amplified by exclamation marks.
func patternScore(cleaned string) float64 {
	var score float64
	for _, p := range phrasePatterns {
		if strings.Contains(cleaned, p.phrase) {
			score += p.valence
		}
	}
	if score == 0 {
		return 0
	}

	exclaims := strings.Count(cleaned, "!")
	if exclaims > 3 {
		exclaims = 3
	}
	score *= 1 + 0.1*float64(exclaims)

	return clamp(score, -1, 1)
}

// contextScore counts keyword classes with graded multipliers, then applies
// text-wide negation and intensifier adjustments the way the class counts
// interact: negation halves and flips, intensifiers amplify.
func contextScore(tokens []string) float64 {
	counts := make(map[string]int, len(tokens))
	hasNegation := false
	hasIntensifier := false

	for _, token := range tokens {
		counts[token]++
		if isNegation(token) {
			hasNegation = true
		}
		if isIntensifier(token) {
			hasIntensifier = true
		}
	}

	count := func(class string) float64 {
		var n int
		for _, word := range contextKeywords[class] {
			n += counts[word]
		}
		return float64(n)
	}

	raw := count("very_positive")*2.0 +
		count("positive")*1.0 -
		count("negative")*1.0 -
		count("very_negative")*2.0

	if hasNegation {
		raw *= -0.5
	}
	if hasIntensifier {
		raw *= 1.5
	}

	return clamp(raw/5, -1, 1)
}

// emojiScore returns the balance of positive vs negative emojis in [-1, 1],
// or 0 when the text carries none. It runs on the raw text because
// normalization may disturb multi-rune emoji.
func emojiScore(text string) float64 {
	var pos, neg int
	for _, e := range positiveEmojis {
		pos += strings.Count(text, e)
	}
	for _, e := range negativeEmojis {
		neg += strings.Count(text, e)
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
