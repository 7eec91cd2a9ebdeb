// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package collector

// Synthetic corpora for the fallback paths. Texts rotate deterministically
// so the pipeline produces a stable mix of moods without any upstream.

type corpusItem struct {
	text   string
	author string
}

var redditCorpus = []corpusItem{
	{"Just had the most wholesome interaction with a stranger today! Sometimes humanity really restores your faith.", "u/wholesomememes_fan"},
	{"Scientists discover new treatment that could help millions. This breakthrough could change everything we know about medical care.", "u/uplifting_reader"},
	{"This dog helped me through my toughest day. I cannot express how grateful I am for this little companion.", "u/smile_collector"},
	{"Feeling overwhelmed with work and personal life lately. Does anyone else struggle with maintaining balance?", "u/honest_asker"},
	{"TIL about an amazing historical discovery that changes everything we thought we knew about ancient civilizations.", "u/history_buff"},
	{"My cat did something absolutely hilarious today and I had to share it with everyone. Pet owners will understand!", "u/cat_chronicles"},
	{"Community comes together to help local family in need. Faith in humanity restored once again.", "u/humans_being_bros"},
	{"Finally achieved my long-term goal after years of hard work! Never give up on your dreams, everyone.", "u/motivated_one"},
	{"Look at this adorable rescue puppy we just adopted. She has already brought so much joy into our home.", "u/puppy_parent"},
}

var youtubeCorpus = []corpusItem{
	{"This is amazing! Made my day so much better 😊", "viewer_4821"},
	{"Really disappointing to see this happening again", "candid_commenter"},
	{"I love how this turned out, incredible work!", "creative_appreciator"},
	{"Not sure how I feel about this trend", "thoughtful_viewer"},
	{"This gives me so much hope for the future", "optimist_daily"},
	{"Feeling pretty anxious about these changes", "worried_watcher"},
	{"What a beautiful moment, thanks for sharing", "grateful_viewer"},
	{"This is exactly what we needed right now", "timely_take"},
}

var newsCorpus = []corpusItem{
	{"Breakthrough in renewable energy technology brings hope for climate goals", "Global Wire"},
	{"Global markets show mixed results amid economic uncertainty", "Market Desk"},
	{"Community comes together to support local families in need", "Local Report"},
	{"Scientists make promising discovery in medical research", "Science Desk"},
	{"Tensions rise in international trade discussions", "World Affairs"},
	{"Record-breaking achievements in space exploration mission", "Space Desk"},
	{"New policies aim to improve public healthcare access", "Policy Watch"},
	{"Environmental concerns grow over industrial expansion", "Environment Desk"},
}

var twitterCorpus = []corpusItem{
	{"Just had the most incredible experience at the local farmers market! 🌟", "@market_wanderer"},
	{"Really concerned about the direction things are heading lately", "@candid_voice"},
	{"Found the perfect book recommendation, absolutely loving it so far!", "@page_turner"},
	{"Traffic is absolutely terrible today, running so late 😤", "@commute_chronicles"},
	{"Beautiful sunset tonight, needed this moment of peace", "@golden_hour"},
	{"Excited about the weekend plans with friends and family!", "@weekend_ready"},
	{"Feeling overwhelmed with everything happening right now", "@honest_thoughts"},
	{"Just discovered this amazing new coffee shop, highly recommend!", "@caffeine_scout"},
}

var forumsCorpus = []corpusItem{
	{"Finally solved that problem I've been working on for weeks! Such a relief", "problem_solver"},
	{"Has anyone else noticed how stressful everything has become lately?", "forum_regular"},
	{"Looking for recommendations for a good vacation spot this summer", "travel_planner"},
	{"Really impressed with the community response to recent events", "community_watcher"},
	{"Struggling to stay motivated with all the uncertainty around us", "seeking_advice"},
	{"Great discussion happening about sustainable living practices", "green_living"},
	{"Feeling grateful for all the support from this community", "thankful_member"},
	{"Anyone else feeling pessimistic about the economic outlook?", "econ_observer"},
}

// trendKeywords feed the google_trends synthetic generator.
var trendKeywords = []string{
	"happy", "sad", "depression", "anxiety", "joy", "celebration",
	"mental health", "wellness", "stress", "vacation", "holiday",
	"birthday", "wedding", "graduation", "promotion", "success",
}

// Metadata rings for the synthetic sources without a live path. Each walks
// in step with the corpus cursor.
var (
	youtubeVideoTitles = []string{
		"Daily Vlog #142", "Top 10 Life Hacks", "Cooking With Grandma",
		"City Walking Tour 4K", "Beginner Guitar Lesson", "Sunrise Timelapse",
		"Tech Review Roundup", "Weekend Adventure Recap",
	}
	newsSections = []string{
		"science", "business", "local", "health",
		"world", "space", "politics", "environment",
	}
	twitterHashtags = []string{
		"#community", "#currentevents", "#booktok", "#commute",
		"#goldenhour", "#weekendvibes", "#mentalhealth", "#coffeelover",
	}
	forumBoards = []string{
		"programming", "general", "travel", "community",
		"advice", "sustainability", "support", "economics",
	}
)

// trendsCorpus is derived from trendKeywords with a rotating interest tier
// so the synthetic stream carries varied sentiment.
var trendsCorpus = buildTrendsCorpus()

func buildTrendsCorpus() []corpusItem {
	items := make([]corpusItem, 0, len(trendKeywords))
	for i, kw := range trendKeywords {
		var text string
		switch i % 3 {
		case 0:
			text = "High search interest in '" + kw + "' - people are actively seeking this"
		case 1:
			text = "Moderate search interest in '" + kw + "'"
		default:
			text = "Low search interest in '" + kw + "'"
		}
		items = append(items, corpusItem{text: text, author: "trends"})
	}
	return items
}

// mastodonCorpus backs the mastodon fallback path when every instance
// is unreachable.
var mastodonCorpus = []corpusItem{
	{"Loving the federated web today, great conversations everywhere!", "@fedi_explorer"},
	{"Server migration finally done, everything feels so much faster now", "@selfhoster"},
	{"Grateful for this community and all the thoughtful posts", "@quiet_corner"},
	{"Frustrated with how hard it is to find reliable information lately", "@media_skeptic"},
	{"Beautiful morning walk photos coming soon, the light was perfect", "@morning_lens"},
	{"Feeling a bit isolated this week, hoping things pick up", "@honest_post"},
	{"Just released a small open source tool, feedback welcome!", "@code_gardener"},
	{"The local meetup was wonderful, met so many kind people", "@irl_optimist"},
}
