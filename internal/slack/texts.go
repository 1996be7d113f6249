package slack

import (
	"fmt"
	"sort"
	"strings"
	"time"

	slackapi "github.com/slack-go/slack"

	"github.com/pbzweihander/glt/internal/domain"
)

const (
	alreadyStartedText  = "A session is already open.\nTo discard it: `/glt reset`"
	notStartedText      = "No session has been started.\nTo start one: `/glt init`"
	invalidArgumentText = "Invalid arguments.\nFor usage: `/glt help`"
	nobodyAddedText     = "Everyone listed is already in today's session."
	removedText         = "Participants removed."
	resetText           = "Today's session has been discarded."
	emptyArchiveText    = "There are no day records for this month yet."
	pushedText          = "This month's log has been archived. Good work!"
	internalErrorText   = "Something went wrong. Please try again later."

	helpText = "`/glt init` — start today's session\n" +
		"`/glt add <name>…` — add participants\n" +
		"`/glt rm <name>…` — remove participants\n" +
		"`/glt status` — show today's session\n" +
		"`/glt commit <note>` — end today's session with a note\n" +
		"`/glt reset` — discard today's session\n" +
		"`/glt log` — show this month's records\n" +
		"`/glt push` — archive this month's records"
)

func ephemeral(text string) slackapi.Msg {
	return slackapi.Msg{
		ResponseType: slackapi.ResponseTypeEphemeral,
		Text:         text,
	}
}

func inChannel(text string) slackapi.Msg {
	return slackapi.Msg{
		ResponseType: slackapi.ResponseTypeInChannel,
		Text:         text,
	}
}

func statusMessage(c domain.DayCommit) slackapi.Msg {
	return slackapi.Msg{
		ResponseType: slackapi.ResponseTypeEphemeral,
		Attachments: []slackapi.Attachment{{
			Pretext: "Today's work log",
			Title:   c.Date.String(),
			Fields: []slackapi.AttachmentField{
				{Title: "Started at", Value: c.StartTime.String()},
				{Title: "Participants", Value: participantLines(c.Participants)},
			},
		}},
	}
}

func committedMessage(c domain.DayCommit) slackapi.Msg {
	diff, _ := c.Duration()
	return slackapi.Msg{
		ResponseType: slackapi.ResponseTypeInChannel,
		Attachments: []slackapi.Attachment{{
			Pretext: "Today's work is done. Good work!",
			Title:   c.Date.String(),
			Fields: []slackapi.AttachmentField{
				{Title: "Hours", Value: timeRange(c.StartTime, *c.EndTime, diff)},
				{Title: "Note", Value: *c.Note},
				{Title: "Participants", Value: participantLines(c.Participants)},
			},
		}},
	}
}

func logMessage(sum domain.MonthSummary) slackapi.Msg {
	a := slackapi.Attachment{
		Pretext: "This month's work log",
		Title:   monthTitle(sum.Anchor),
		Text: fmt.Sprintf("%d day(s), %s logged this month.",
			sum.Days, formatHours(sum.TotalHours)),
		MarkdownIn: []string{"fields"},
	}
	for _, c := range sum.Commits {
		a.Fields = append(a.Fields, slackapi.AttachmentField{
			Title: fmt.Sprintf("Day %d", c.Date.Day),
			Value: dayLine(c),
		})
	}
	if len(sum.Participants) > 0 {
		a.Fields = append(a.Fields, slackapi.AttachmentField{
			Title: "Totals",
			Value: totalsLines(sum),
		})
	}
	return slackapi.Msg{
		ResponseType: slackapi.ResponseTypeInChannel,
		Attachments:  []slackapi.Attachment{a},
	}
}

func dayLine(c domain.DayCommit) string {
	var b strings.Builder
	if diff, ok := c.Duration(); ok {
		b.WriteString(timeRange(c.StartTime, *c.EndTime, diff))
	} else {
		b.WriteString(c.StartTime.String() + " started")
	}
	if c.Note != nil {
		b.WriteString("\n" + *c.Note)
	}
	if len(c.Participants) > 0 {
		names := make([]string, len(c.Participants))
		for i, p := range c.Participants {
			names[i] = p.Name
		}
		b.WriteString("\n" + strings.Join(names, ", "))
	}
	return b.String()
}

func totalsLines(sum domain.MonthSummary) string {
	names := make([]string, 0, len(sum.Participants))
	for name := range sum.Participants {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, fmt.Sprintf("Out of %d day(s) and %s:",
		sum.Days, formatHours(sum.TotalHours)))
	for _, name := range names {
		t := sum.Participants[name]
		lines = append(lines, fmt.Sprintf("%s — %d day(s), %s",
			name, t.Days, formatHours(t.Hours)))
	}
	return strings.Join(lines, "\n")
}

func participantLines(ps []domain.Participant) string {
	var b strings.Builder
	for _, p := range ps {
		fmt.Fprintf(&b, "%s - %s\n", p.Name, p.JoinedAt)
	}
	return b.String()
}

func timeRange(start, end domain.Time, diff domain.TimeDiff) string {
	return fmt.Sprintf("%s ~ %s (%s)", start, end, diff)
}

func monthTitle(d domain.Date) string {
	return fmt.Sprintf("%s %d", time.Month(d.Month), d.Year)
}

func formatHours(f float64) string {
	t := domain.TimeFromHours(f)
	return fmt.Sprintf("%dh %dm", t.Hour, t.Minute)
}
