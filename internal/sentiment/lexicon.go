// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package sentiment

// wordValence maps single tokens to valence scores in [-1, 1].
var wordValence = map[string]float64{
	// strongly positive
	"amazing":      0.9,
	"fantastic":    0.9,
	"incredible":   0.9,
	"wonderful":    0.9,
	"perfect":      0.9,
	"excellent":    0.9,
	"outstanding":  0.9,
	"brilliant":    0.9,
	"spectacular":  0.9,
	"phenomenal":   0.9,
	"breathtaking": 0.9,

	// positive
	"good":      0.6,
	"great":     0.6,
	"nice":      0.6,
	"happy":     0.6,
	"pleased":   0.6,
	"satisfied": 0.6,
	"glad":      0.6,
	"thankful":  0.6,
	"grateful":  0.6,
	"excited":   0.6,
	"joy":       0.6,
	"love":      0.6,
	"like":      0.4,
	"hope":      0.5,
	"hopeful":   0.5,
	"beautiful": 0.6,
	"success":   0.5,
	"support":   0.4,
	"win":       0.5,
	"relief":    0.5,
	"adorable":  0.7,
	"wholesome": 0.7,
	"impressed": 0.5,
	"promising": 0.5,

	// negative
	"bad":          -0.6,
	"terrible":     -0.7,
	"awful":        -0.7,
	"horrible":     -0.7,
	"sad":          -0.6,
	"angry":        -0.6,
	"frustrated":   -0.6,
	"disappointed": -0.6,
	"upset":        -0.6,
	"annoyed":      -0.5,
	"hate":         -0.7,
	"dislike":      -0.5,
	"worried":      -0.5,
	"anxious":      -0.5,
	"stressed":     -0.5,
	"stressful":    -0.5,
	"overwhelmed":  -0.5,
	"fear":         -0.5,
	"concerned":    -0.4,
	"struggling":   -0.5,
	"pessimistic":  -0.5,
	"uncertainty":  -0.4,
	"lose":         -0.5,
	"lost":         -0.4,

	// strongly negative
	"devastating":  -0.9,
	"catastrophic": -0.9,
	"tragic":       -0.9,
	"nightmare":    -0.9,
	"disaster":     -0.9,
	"horrific":     -0.9,
	"disgusting":   -0.9,
	"appalling":    -0.9,
	"dreadful":     -0.9,
	"abysmal":      -0.9,
}

// phrasePatterns maps multi-word phrases to valence scores. Phrases are
// matched as substrings of the normalized text, in fixed order so scoring
// stays bit-for-bit deterministic.
var phrasePatterns = []struct {
	phrase  string
	valence float64
}{
	{"made my day", 0.8},
	{"faith in humanity", 0.8},
	{"restores your faith", 0.8},
	{"thank you", 0.7},
	{"highly recommend", 0.7},
	{"never give up", 0.6},
	{"looking forward", 0.6},
	{"what we needed", 0.6},
	{"came together", 0.5},
	{"comes together", 0.5},
	{"running late", -0.4},
	{"give up", -0.6},
	{"let down", -0.6},
	{"fed up", -0.7},
	{"falling apart", -0.7},
	{"no hope", -0.7},
	{"worst day", -0.8},
}

// contextKeywords groups keywords by intensity class for the
// context-scoring pass.
var contextKeywords = map[string][]string{
	"very_positive": {
		"amazing", "fantastic", "incredible", "wonderful", "perfect",
		"excellent", "outstanding", "brilliant", "spectacular", "phenomenal",
	},
	"positive": {
		"good", "great", "nice", "happy", "pleased", "satisfied", "glad",
		"thankful", "grateful", "excited", "joy", "love", "like",
	},
	"negative": {
		"bad", "terrible", "awful", "horrible", "sad", "angry", "frustrated",
		"disappointed", "upset", "annoyed", "hate", "dislike",
	},
	"very_negative": {
		"devastating", "catastrophic", "tragic", "nightmare", "disaster",
		"horrific", "disgusting", "appalling", "dreadful", "abysmal",
	},
}

// intensifiers amplify the valence of a nearby sentiment word.
var intensifiers = map[string]struct{}{
	"very": {}, "extremely": {}, "incredibly": {}, "absolutely": {},
	"totally": {}, "completely": {}, "utterly": {}, "really": {},
	"quite": {}, "so": {},
}

// negations invert and dampen the valence of a nearby sentiment word.
var negations = map[string]struct{}{
	"not": {}, "never": {}, "no": {}, "nothing": {}, "nobody": {},
	"nowhere": {}, "neither": {}, "nor": {}, "hardly": {},
	"scarcely": {}, "barely": {},
}

// positiveEmojis and negativeEmojis back the emoji-scoring pass.
var positiveEmojis = []string{
	"😊", "😄", "😃", "😁", "🙂", "😍", "🥰", "😘", "🤗", "🎉",
	"🎊", "👍", "❤️", "💕", "🌟", "✨",
}

var negativeEmojis = []string{
	"😞", "😢", "😭", "😰", "😨", "😱", "😡", "😠", "💔", "😔",
	"😟", "😕", "👎", "😪", "😫", "😩", "😤",
}
