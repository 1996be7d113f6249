package domain

import (
	"errors"
	"math"
	"testing"
)

func sealed(date Date, start, end Time, names ...string) DayCommit {
	c := NewDayCommit(date, start)
	c.AddParticipants(names, start)
	e := end
	c.EndTime = &e
	note := "work"
	c.Note = &note
	return c
}

func TestSummarizeTotalHours(t *testing.T) {
	commits := []DayCommit{
		sealed(Date{2018, 3, 1}, Time{9, 0}, Time{18, 0}),
		sealed(Date{2018, 3, 2}, Time{10, 0}, Time{19, 0}),
	}
	sum, err := Summarize(commits)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.TotalHours != 18.0 {
		t.Fatalf("TotalHours = %v, want 18.0", sum.TotalHours)
	}

	// Drop the second record's end time: it contributes nothing.
	commits[1].EndTime = nil
	sum, err = Summarize(commits)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.TotalHours != 9.0 {
		t.Fatalf("TotalHours = %v, want 9.0", sum.TotalHours)
	}
}

func TestSummarizePerParticipant(t *testing.T) {
	day1 := NewDayCommit(Date{2018, 3, 1}, Time{9, 0})
	day1.AddParticipants([]string{"Alice"}, Time{9, 0})
	end1 := Time{18, 0}
	day1.EndTime = &end1

	day2 := NewDayCommit(Date{2018, 3, 2}, Time{10, 0})
	day2.AddParticipants([]string{"Alice"}, Time{10, 0})
	end2 := Time{19, 0}
	day2.EndTime = &end2

	sum, err := Summarize([]DayCommit{day1, day2})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	alice, ok := sum.Participants["Alice"]
	if !ok {
		t.Fatal("Alice missing from summary")
	}
	if alice.Days != 2 {
		t.Fatalf("Alice.Days = %d, want 2", alice.Days)
	}
	if math.Abs(alice.Hours-18.0) > 1e-9 {
		t.Fatalf("Alice.Hours = %v, want 18.0", alice.Hours)
	}
}

func TestSummarizeSkipsOpenDayForParticipants(t *testing.T) {
	open := NewDayCommit(Date{2018, 3, 3}, Time{9, 0})
	open.AddParticipants([]string{"Bob"}, Time{9, 0})

	sum, err := Summarize([]DayCommit{open})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if _, ok := sum.Participants["Bob"]; ok {
		t.Fatal("participant of an unsealed day was counted")
	}
	if sum.Days != 1 {
		t.Fatalf("Days = %d, want 1", sum.Days)
	}
}

func TestSummarizeClampsJoinAfterEnd(t *testing.T) {
	c := NewDayCommit(Date{2018, 3, 1}, Time{9, 0})
	c.AddParticipants([]string{"Late"}, Time{19, 0})
	end := Time{18, 0}
	c.EndTime = &end

	sum, err := Summarize([]DayCommit{c})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	late := sum.Participants["Late"]
	if late.Days != 1 {
		t.Fatalf("Days = %d, want 1", late.Days)
	}
	if late.Hours != 0 {
		t.Fatalf("Hours = %v, want 0 (clamped)", late.Hours)
	}
}

func TestSummarizeAnchorIsEarliestDate(t *testing.T) {
	commits := []DayCommit{
		sealed(Date{2018, 4, 2}, Time{9, 0}, Time{10, 0}),
		sealed(Date{2018, 3, 28}, Time{9, 0}, Time{10, 0}),
	}
	sum, err := Summarize(commits)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Anchor != (Date{2018, 3, 28}) {
		t.Fatalf("Anchor = %v, want 2018-03-28", sum.Anchor)
	}
	if sum.Commits[0].Date != (Date{2018, 3, 28}) {
		t.Fatalf("commits not sorted: first is %v", sum.Commits[0].Date)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrEmptyLog) {
		t.Fatalf("err = %v, want ErrEmptyLog", err)
	}
}
