// ABOUTME: Linux termios ioctl request numbers
// ABOUTME: TCGETS and TCSETS apply changes immediately

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)
