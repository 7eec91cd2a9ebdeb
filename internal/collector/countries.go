// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package collector

// countryRing is the rotation used to attribute synthetic items to
// countries. Empty entries yield items with unknown origin, so country
// aggregates never capture the full stream.
var countryRing = []string{
	"United States",
	"Brazil",
	"",
	"United Kingdom",
	"Germany",
	"Japan",
	"",
	"India",
	"France",
	"Canada",
	"Australia",
	"",
	"Mexico",
	"Sweden",
	"South Korea",
	"Nigeria",
	"",
	"Argentina",
	"Spain",
	"Denmark",
	"Indonesia",
	"",
	"Italy",
	"Norway",
	"South Africa",
	"China",
	"",
	"Netherlands",
	"Finland",
	"Egypt",
}
