// ABOUTME: termios-based raw mode for Linux and the BSD family
// ABOUTME: Clears ICANON and ECHO and sets VMIN=1, VTIME=0, leaving ICRNL and OPOST set

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

type savedState struct {
	termios unix.Termios
}

func makeRaw(fd int) (*savedState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	saved := &savedState{termios: *termios}

	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, err
	}
	return saved, nil
}

func restore(fd int, state *savedState) error {
	return unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios)
}
