package domain

import (
	"errors"
	"sort"
)

// ErrEmptyLog reports that there are no day records to summarize.
var ErrEmptyLog = errors.New("no day records to summarize")

// ParticipantTotal is one participant's attendance across a month.
type ParticipantTotal struct {
	Days  int
	Hours float64
}

// MonthSummary is the rollup of one month of day commits.
type MonthSummary struct {
	// Anchor is the earliest commit's date; its year and month name the
	// month being summarized.
	Anchor       Date
	Days         int
	TotalHours   float64
	Commits      []DayCommit
	Participants map[string]ParticipantTotal
}

// SortCommits orders commits by date, earliest first. Directory listing
// order is not chronological, so callers that need a month anchor must
// sort before picking one.
func SortCommits(commits []DayCommit) {
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Date.Before(commits[j].Date)
	})
}

// Summarize rolls a month of day commits up into total hours and
// per-participant attendance. Commits without an end time contribute
// nothing to any hour total. A participant whose join time falls after the
// session end contributes zero hours for that day rather than a negative
// amount; the day itself still counts.
func Summarize(commits []DayCommit) (MonthSummary, error) {
	if len(commits) == 0 {
		return MonthSummary{}, ErrEmptyLog
	}

	sorted := make([]DayCommit, len(commits))
	copy(sorted, commits)
	SortCommits(sorted)

	sum := MonthSummary{
		Anchor:       sorted[0].Date,
		Days:         len(sorted),
		Commits:      sorted,
		Participants: map[string]ParticipantTotal{},
	}

	for _, c := range sorted {
		diff, ok := c.Duration()
		if !ok {
			continue
		}
		sum.TotalHours += diff.Hours()

		for _, p := range c.Participants {
			total := sum.Participants[p.Name]
			total.Days++
			if h := c.EndTime.Sub(p.JoinedAt).Hours(); h > 0 {
				total.Hours += h
			}
			sum.Participants[p.Name] = total
		}
	}
	return sum, nil
}
