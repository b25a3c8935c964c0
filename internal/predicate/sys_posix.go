//go:build linux || darwin || freebsd

package predicate

import "golang.org/x/sys/unix"

type accessMode uint32

const (
	accessRead    accessMode = unix.R_OK
	accessWrite   accessMode = unix.W_OK
	accessExecute accessMode = unix.X_OK
)

// effectiveAccess asks the kernel whether the effective uid and gid may
// access path, so supplementary groups, ACLs and root are honored.
func effectiveAccess(path string, mode accessMode) error {
	return unix.Faccessat(unix.AT_FDCWD, path, uint32(mode), unix.AT_EACCESS)
}

func fileOwner(path string) (uid, gid uint32, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, 0, err
	}
	return st.Uid, st.Gid, nil
}

func effectiveUID() uint32 { return uint32(unix.Geteuid()) }

func effectiveGID() uint32 { return uint32(unix.Getegid()) }
