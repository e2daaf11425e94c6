package reaper_test

import (
	"testing"

	"github.com/dsmmcken/killport/internal/reaper"
	"github.com/stretchr/testify/assert"
)

const netstatFixture = `
Active Connections

  Proto  Local Address          Foreign Address        State           PID
  TCP    0.0.0.0:135            0.0.0.0:0              LISTENING       888
  TCP    0.0.0.0:5001           0.0.0.0:0              LISTENING       1234
  TCP    127.0.0.1:5001         127.0.0.1:51000        ESTABLISHED     1234
  TCP    127.0.0.1:51000        127.0.0.1:5001         ESTABLISHED     7777
  TCP    0.0.0.0:50010          0.0.0.0:0              LISTENING       4242
  TCP    127.0.0.1:5001         127.0.0.1:51002        TIME_WAIT       0
  TCP    [::]:5001              [::]:0                 LISTENING       1234
  UDP    0.0.0.0:5001           *:*                                    2468
`

func TestParseNetstatOutputScenarioA(t *testing.T) {
	content := "TCP 0.0.0.0:5001 0.0.0.0:0 LISTENING 1234\n" +
		"TCP 127.0.0.1:5001 127.0.0.1:51000 ESTABLISHED 1234\n"

	for _, mode := range []reaper.MatchMode{reaper.MatchLocal, reaper.MatchSubstring} {
		t.Run(string(mode), func(t *testing.T) {
			pids := reaper.ParseNetstatOutput(content, 5001, mode)
			assert.Equal(t, []reaper.PID{"1234"}, pids)
		})
	}
}

func TestParseNetstatOutputLocalMatch(t *testing.T) {
	pids := reaper.ParseNetstatOutput(netstatFixture, 5001, reaper.MatchLocal)
	// 7777 only has 5001 as its remote port and 4242 listens on 50010.
	assert.Equal(t, []reaper.PID{"1234", "2468"}, pids)
}

func TestParseNetstatOutputSubstringMatch(t *testing.T) {
	pids := reaper.ParseNetstatOutput(netstatFixture, 5001, reaper.MatchSubstring)
	assert.Equal(t, []reaper.PID{"1234", "7777", "4242", "2468"}, pids)
}

func TestParseNetstatOutputCRLF(t *testing.T) {
	content := "  TCP    0.0.0.0:5001    0.0.0.0:0    LISTENING    1234\r\n" +
		"  TCP    [::]:5001       [::]:0       LISTENING    1234\r\n"
	pids := reaper.ParseNetstatOutput(content, 5001, reaper.MatchLocal)
	assert.Equal(t, []reaper.PID{"1234"}, pids)
}

func TestParseNetstatOutputNoMatches(t *testing.T) {
	pids := reaper.ParseNetstatOutput(netstatFixture, 8080, reaper.MatchLocal)
	assert.Empty(t, pids)
}

func TestParseNetstatOutputEmpty(t *testing.T) {
	assert.Empty(t, reaper.ParseNetstatOutput("", 5001, reaper.MatchLocal))
	assert.Empty(t, reaper.ParseNetstatOutput("\n\n   \n", 5001, reaper.MatchSubstring))
}

func TestParseNetstatOutputUnknownModeFallsBackToLocal(t *testing.T) {
	pids := reaper.ParseNetstatOutput(netstatFixture, 5001, reaper.MatchMode(""))
	assert.Equal(t, []reaper.PID{"1234", "2468"}, pids)
}

func TestParseLsofOutputScenarioB(t *testing.T) {
	pids := reaper.ParseLsofOutput("4321\n4321\n")
	assert.Equal(t, []reaper.PID{"4321"}, pids)
}

func TestParseLsofOutputMultiple(t *testing.T) {
	pids := reaper.ParseLsofOutput("812\n4321\n812\n  99\n")
	assert.Equal(t, []reaper.PID{"812", "4321", "99"}, pids)
}

func TestParseNetstatOutputSkipsNonNumericPIDs(t *testing.T) {
	content := "  TCP    0.0.0.0:5001    0.0.0.0:0    LISTENING    [java.exe]\n" +
		"  TCP    [::]:5001       [::]:0       LISTENING    -1\n" +
		"  TCP    0.0.0.0:5001    0.0.0.0:0    LISTENING    1234\n"

	for _, mode := range []reaper.MatchMode{reaper.MatchLocal, reaper.MatchSubstring} {
		t.Run(string(mode), func(t *testing.T) {
			assert.Equal(t, []reaper.PID{"1234"}, reaper.ParseNetstatOutput(content, 5001, mode))
		})
	}
}

func TestParseLsofOutputSkipsNonNumericTokens(t *testing.T) {
	pids := reaper.ParseLsofOutput("-1\n0\nlsof\n4321\n")
	assert.Equal(t, []reaper.PID{"4321"}, pids)
}

func TestParseLsofOutputEmpty(t *testing.T) {
	assert.Empty(t, reaper.ParseLsofOutput(""))
	assert.Empty(t, reaper.ParseLsofOutput("\n"))
}
