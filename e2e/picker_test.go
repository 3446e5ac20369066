// ABOUTME: E2E tests for the interactive picker: cycling, selection, quit
// ABOUTME: Runs the real binary in a PTY and checks the persisted state file

package e2e

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

const arrowRight = "\x1b[C"

func readState(t *testing.T, s *session) string {
	t.Helper()
	data, err := os.ReadFile(s.stateFile())
	if err != nil {
		t.Fatalf("reading state: %v", err)
	}
	return string(data)
}

func TestPicker_CycleAndQuit(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	s := start(t)
	defer s.close()

	s.expectStringTimeout(t, "Dracula Pro", 5*time.Second)

	s.send(t, arrowRight)
	time.Sleep(100 * time.Millisecond)
	s.send(t, "l")
	time.Sleep(200 * time.Millisecond)
	s.send(t, "q")
	s.waitExit(t, 5*time.Second)

	if state := readState(t, s); !strings.Contains(state, `"nord"`) {
		t.Errorf("state = %s; want nord after two steps from dracula", state)
	}
}

func TestPicker_FilterAndSelect(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	s := start(t)
	defer s.close()

	s.expectStringTimeout(t, "Tokyo Night", 5*time.Second)

	// Separate writes so the terminal reader sees distinct key events.
	for _, keys := range []string{"/", "tokyo", "\r", "\r"} {
		s.send(t, keys)
		time.Sleep(100 * time.Millisecond)
	}
	s.sendCtrl(t, 'c')
	s.waitExit(t, 5*time.Second)

	if state := readState(t, s); !strings.Contains(state, `"tokyo_night"`) {
		t.Errorf("state = %s; want tokyo_night", state)
	}
}

func TestPicker_RestoresPreviousSelection(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	first := start(t, "--default", "nord")
	first.expectStringTimeout(t, "Nord", 5*time.Second)
	first.send(t, "h")
	time.Sleep(200 * time.Millisecond)
	first.send(t, "q")
	first.waitExit(t, 5*time.Second)
	first.close()

	cmd := exec.Command(binPath, "current")
	cmd.Env = append(os.Environ(), "HOME="+first.home, "THEMESWITCH_STORE=", "THEMESWITCH_CATALOG=", "THEMESWITCH_DEFAULT_THEME=")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if !strings.HasPrefix(string(out), "dracula_pro\t") {
		t.Errorf("current = %q; want dracula_pro restored from state", out)
	}
}
