// ABOUTME: BSD and darwin termios ioctl request numbers
// ABOUTME: TIOCGETA and TIOCSETA apply changes immediately

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)
