package domain

// Participant is someone who attended a work session. Two participants are
// the same participant iff their names match; the join time is informational.
type Participant struct {
	JoinedAt Time   `json:"commit_time"`
	Name     string `json:"name"`
}

// DayCommit is one day's work session. EndTime and Note are both nil while
// the session is open and both set once it has been committed.
type DayCommit struct {
	Date         Date          `json:"date"`
	StartTime    Time          `json:"start_time"`
	EndTime      *Time         `json:"end_time"`
	Note         *string       `json:"note"`
	Participants []Participant `json:"participants"`
}

// NewDayCommit returns an open commit for the given date and start time.
func NewDayCommit(date Date, start Time) DayCommit {
	return DayCommit{
		Date:         date,
		StartTime:    start,
		Participants: []Participant{},
	}
}

// Sealed reports whether the commit has been finalized.
func (c DayCommit) Sealed() bool {
	return c.EndTime != nil
}

// Duration returns end - start. ok is false for an open commit.
func (c DayCommit) Duration() (diff TimeDiff, ok bool) {
	if c.EndTime == nil {
		return TimeDiff{}, false
	}
	return c.EndTime.Sub(c.StartTime), true
}

// Clone returns a deep copy; mutating the copy's participant list leaves
// the original untouched.
func (c DayCommit) Clone() DayCommit {
	out := c
	if c.EndTime != nil {
		end := *c.EndTime
		out.EndTime = &end
	}
	if c.Note != nil {
		note := *c.Note
		out.Note = &note
	}
	out.Participants = append([]Participant(nil), c.Participants...)
	return out
}

// HasParticipant reports whether a participant with the given name is present.
func (c DayCommit) HasParticipant(name string) bool {
	for _, p := range c.Participants {
		if p.Name == name {
			return true
		}
	}
	return false
}

// AddParticipants inserts each requested name with the given join time,
// keeping the list a name set in insertion order. Names already present,
// and duplicates within the request, are skipped silently. The returned
// slice holds the names actually added, in request order.
func (c *DayCommit) AddParticipants(names []string, joinedAt Time) []string {
	added := []string{}
	for _, name := range names {
		if name == "" || c.HasParticipant(name) {
			continue
		}
		c.Participants = append(c.Participants, Participant{Name: name, JoinedAt: joinedAt})
		added = append(added, name)
	}
	return added
}

// RemoveParticipants deletes every participant whose name matches any of
// the requested names. Names not present are ignored.
func (c *DayCommit) RemoveParticipants(names []string) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	kept := c.Participants[:0]
	for _, p := range c.Participants {
		if !drop[p.Name] {
			kept = append(kept, p)
		}
	}
	c.Participants = kept
}
