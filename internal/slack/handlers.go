package slack

import (
	"strings"

	slackapi "github.com/slack-go/slack"

	"github.com/pbzweihander/glt/internal/domain"
)

func (r *Router) handleInit() slackapi.Msg {
	now := r.now()
	c, err := r.store.Begin(domain.DateOf(now), domain.TimeOf(now))
	if err != nil {
		return r.failure("init", err)
	}
	return inChannel(c.Date.String() + " — work started!")
}

func (r *Router) handleAdd(args string) slackapi.Msg {
	names := strings.Fields(args)
	if len(names) == 0 {
		return ephemeral(invalidArgumentText)
	}
	joinedAt := domain.TimeOf(r.now())

	var added []string
	_, _, err := r.store.Update(func(c domain.DayCommit) domain.DayCommit {
		added = c.AddParticipants(names, joinedAt)
		return c
	})
	if err != nil {
		return r.failure("add", err)
	}
	if len(added) == 0 {
		return ephemeral(nobodyAddedText)
	}
	return inChannel(strings.Join(added, ", ") + " joined today's session.")
}

func (r *Router) handleRemove(args string) slackapi.Msg {
	names := strings.Fields(args)
	if len(names) == 0 {
		return ephemeral(invalidArgumentText)
	}
	_, _, err := r.store.Update(func(c domain.DayCommit) domain.DayCommit {
		c.RemoveParticipants(names)
		return c
	})
	if err != nil {
		return r.failure("rm", err)
	}
	return ephemeral(removedText)
}

func (r *Router) handleStatus() slackapi.Msg {
	c, err := r.store.Get()
	if err != nil {
		return r.failure("status", err)
	}
	return statusMessage(c)
}

func (r *Router) handleCommit(args string) slackapi.Msg {
	note := strings.TrimSpace(args)
	if note == "" {
		return ephemeral(invalidArgumentText)
	}
	c, err := r.store.Finalize(domain.TimeOf(r.now()), note)
	if err != nil {
		return r.failure("commit", err)
	}
	return committedMessage(c)
}

func (r *Router) handleReset() slackapi.Msg {
	if err := r.store.Discard(); err != nil {
		return r.failure("reset", err)
	}
	return ephemeral(resetText)
}

func (r *Router) handleLog() slackapi.Msg {
	commits, err := r.store.ListDays()
	if err != nil {
		return r.failure("log", err)
	}
	sum, err := domain.Summarize(commits)
	if err != nil {
		return r.failure("log", err)
	}
	return logMessage(sum)
}

func (r *Router) handlePush() slackapi.Msg {
	if err := r.store.ArchiveMonth(); err != nil {
		return r.failure("push", err)
	}
	return ephemeral(pushedText)
}

func (r *Router) handleHelp() slackapi.Msg {
	return ephemeral(helpText)
}
