package reaper

import (
	"strconv"
	"strings"
)

// PID identifies an OS process. It is kept as the text the diagnostic tool
// printed and handed back to the kill command unchanged.
type PID string

// MatchMode controls how netstat lines are tested against the target port.
type MatchMode string

const (
	// MatchLocal keeps a line only when its local-address column ends in
	// ":<port>".
	MatchLocal MatchMode = "local"
	// MatchSubstring keeps any line containing ":<port>" anywhere. This also
	// hits connections whose remote port is the target, longer ports sharing
	// the prefix (":50010" for 5001) and similar noise.
	MatchSubstring MatchMode = "substring"
)

// validPID reports whether tok can be handed to a kill command. netstat
// reports PID 0 as the owner of sockets in TIME_WAIT, and a non-numeric or
// negative token must never become a kill argument ("kill -9 -1").
func validPID(tok string) bool {
	n, err := strconv.Atoi(tok)
	return err == nil && n > 0
}

// pidSet collects PIDs once each, in the order they were first seen.
type pidSet struct {
	seen  map[PID]bool
	order []PID
}

func (s *pidSet) add(pid PID) {
	if s.seen == nil {
		s.seen = make(map[PID]bool)
	}
	if s.seen[pid] {
		return
	}
	s.seen[pid] = true
	s.order = append(s.order, pid)
}

func (s *pidSet) list() []PID {
	return s.order
}

// ParseNetstatOutput extracts owning PIDs for port from `netstat -ano` output.
// Columns are whitespace-delimited positional text:
//
//	Proto  Local Address   Foreign Address  State      PID
//	TCP    0.0.0.0:5001    0.0.0.0:0        LISTENING  1234
//	UDP    0.0.0.0:5001    *:*                         1234
//
// The PID is always the last token of a kept line.
func ParseNetstatOutput(content string, port int, mode MatchMode) []PID {
	needle := ":" + strconv.Itoa(port)

	var pids pidSet
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var keep bool
		switch mode {
		case MatchSubstring:
			keep = strings.Contains(line, needle)
		default:
			keep = localPortMatches(fields, needle)
		}
		if !keep {
			continue
		}

		tok := fields[len(fields)-1]
		if !validPID(tok) {
			continue
		}
		pids.add(PID(tok))
	}
	return pids.list()
}

// localPortMatches reports whether a netstat row is a TCP/UDP socket whose
// local address ends in needle.
func localPortMatches(fields []string, needle string) bool {
	if len(fields) < 4 {
		return false
	}
	proto := strings.ToUpper(fields[0])
	if !strings.HasPrefix(proto, "TCP") && !strings.HasPrefix(proto, "UDP") {
		return false
	}
	return strings.HasSuffix(fields[1], needle)
}

// ParseLsofOutput parses `lsof -t` output, which is nothing but PIDs separated
// by newlines. Anything that is not a positive integer is skipped.
func ParseLsofOutput(content string) []PID {
	var pids pidSet
	for _, tok := range strings.Fields(content) {
		if !validPID(tok) {
			continue
		}
		pids.add(PID(tok))
	}
	return pids.list()
}
