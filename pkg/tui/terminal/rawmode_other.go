// ABOUTME: Raw mode fallback for platforms without a termios ioctl mapping
// ABOUTME: Delegates to golang.org/x/term MakeRaw and Restore

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "golang.org/x/term"

type savedState struct {
	state *term.State
}

func makeRaw(fd int) (*savedState, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &savedState{state: state}, nil
}

func restore(fd int, s *savedState) error {
	return term.Restore(fd, s.state)
}
