package superlog

import (
	"bytes"
	"io"

	"github.com/coreos/go-systemd/journal"
)

var _ io.Writer = (*JournalWriter)(nil) // compile-time interface check

// JournalWriter writes each Write as one journal entry. log.SetOutput() can use it.
//
// If the journal rejects an entry, the error and the entry go to Fallback (if not nil).
type JournalWriter struct {
	Priority // default 0 is 'Emergency' level
	Tag      string
	Fallback io.Writer
}

// Write sends b without its trailing newline
func (j *JournalWriter) Write(b []byte) (int, error) {
	var vars map[string]string
	if j.Tag != "" {
		vars = map[string]string{"SYSLOG_IDENTIFIER": j.Tag}
	}
	err := journal.Send(string(bytes.TrimRight(b, "\n")), j.Priority, vars)
	if err != nil {
		if j.Fallback != nil {
			io.WriteString(j.Fallback, "superlog: journal: "+err.Error()+"\n")
			j.Fallback.Write(b)
		}
		return 0, err
	}
	return len(b), nil
}
