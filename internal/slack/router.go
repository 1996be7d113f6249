package slack

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/pbzweihander/glt/internal/domain"
	"github.com/pbzweihander/glt/internal/store"
)

// Router turns Slack slash-command requests into store operations and
// renders the results back as Slack messages.
type Router struct {
	log   *zap.Logger
	store *store.Store
	token string
	now   func() time.Time
}

// NewRouter creates a router for one data root. token is the Slack
// verification token compared against every incoming payload.
func NewRouter(log *zap.Logger, st *store.Store, token string) *Router {
	return &Router{
		log:   log,
		store: st,
		token: token,
		now:   time.Now,
	}
}

// Handler serves the slash-command endpoint.
func (r *Router) Handler() http.Handler {
	return http.HandlerFunc(r.handleSlash)
}

func (r *Router) handleSlash(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cmd, err := slackapi.SlashCommandParse(req)
	if err != nil {
		r.log.Warn("malformed slash payload", zap.Error(err))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if cmd.Token != r.token {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	command, args := ParseCommand(cmd.Text)
	msg := r.dispatch(command, args)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		r.log.Error("encode response failed", zap.Error(err))
	}
}

func (r *Router) dispatch(c Command, args string) slackapi.Msg {
	switch c {
	case CmdInit:
		return r.handleInit()
	case CmdAdd:
		return r.handleAdd(args)
	case CmdRemove:
		return r.handleRemove(args)
	case CmdStatus:
		return r.handleStatus()
	case CmdCommit:
		return r.handleCommit(args)
	case CmdReset:
		return r.handleReset()
	case CmdLog:
		return r.handleLog()
	case CmdPush:
		return r.handlePush()
	default:
		return r.handleHelp()
	}
}

// failure maps known store and aggregation failures to friendly ephemeral
// replies; anything else is logged and reported generically so the
// transport never crashes on a storage error.
func (r *Router) failure(op string, err error) slackapi.Msg {
	switch {
	case errors.Is(err, store.ErrAlreadyOpen):
		return ephemeral(alreadyStartedText)
	case errors.Is(err, store.ErrNoOpenSession):
		return ephemeral(notStartedText)
	case errors.Is(err, store.ErrEmptyArchive), errors.Is(err, domain.ErrEmptyLog):
		return ephemeral(emptyArchiveText)
	default:
		r.log.Error(op+" failed", zap.Error(err))
		return ephemeral(internalErrorText)
	}
}
