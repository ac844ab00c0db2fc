// superlog package picks a log destination: stderr, syslog (local or remote) or the systemd journal.
//
//	w, err := superlog.New(superlog.Config{Journal: true})
//	log.SetOutput(w)
package superlog

import (
	"io"
	"log/syslog"
	"os"
	"path/filepath"

	"github.com/coreos/go-systemd/journal"
	"github.com/pkg/errors"
)

// Priority 0 (emerg) .. 7 (debug), same numbering for syslog and journal
type Priority = journal.Priority

// Config selects a destination. The zero Config logs to os.Stderr.
type Config struct {
	Syslog       bool
	RemoteSyslog string // host:port, udp. implies Syslog
	Journal      bool
	Priority     Priority  // zero uses INFO
	Tag          string    // defaults to program name
	Stderr       io.Writer // default destination and journal fallback, defaults to os.Stderr
}

func (c Config) priority() Priority {
	if c.Priority == 0 {
		return journal.PriInfo
	}
	return c.Priority
}

func (c Config) tag() string {
	if c.Tag == "" {
		return filepath.Base(os.Args[0])
	}
	return c.Tag
}

func (c Config) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

// New returns a non-nil io.Writer. if err is not nil, the Stderr writer is returned with the error.
func New(c Config) (io.Writer, error) {
	switch {
	case c.Syslog || c.RemoteSyslog != "":
		netw := ""
		if c.RemoteSyslog != "" {
			netw = "udp"
		}
		syslogw, err := syslog.Dial(netw, c.RemoteSyslog, syslog.Priority(c.priority())|syslog.LOG_DAEMON, c.tag())
		if err != nil {
			return c.stderr(), errors.Wrap(err, "superlog: syslog")
		}
		return syslogw, nil
	case c.Journal:
		if !journal.Enabled() {
			return c.stderr(), errors.New("superlog: journal not enabled")
		}
		return &JournalWriter{Priority: c.priority(), Tag: c.tag(), Fallback: c.stderr()}, nil
	default:
		return c.stderr(), nil
	}
}
