package predicate

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

func (e *Evaluator) evalFile(r FileRequest) Result {
	path := ExpandPath(r.Path)
	switch r.Verb {
	case FileExists:
		return statCheck(path, func(fs.FileInfo) bool { return true })
	case FileDirectory:
		return statCheck(path, fs.FileInfo.IsDir)
	case FileRegular:
		return statCheck(path, func(fi fs.FileInfo) bool { return fi.Mode().IsRegular() })
	case FileSymlink:
		fi, err := os.Lstat(path)
		if err != nil {
			return falseBecause(noMetadata(path, err))
		}
		return verdict(fi.Mode()&fs.ModeSymlink != 0)
	case FileBlockDevice:
		return statCheck(path, func(fi fs.FileInfo) bool {
			m := fi.Mode()
			return m&fs.ModeDevice != 0 && m&fs.ModeCharDevice == 0
		})
	case FileCharDevice:
		return statCheck(path, modeSet(fs.ModeCharDevice))
	case FileNamedPipe:
		return statCheck(path, modeSet(fs.ModeNamedPipe))
	case FileSocket:
		return statCheck(path, modeSet(fs.ModeSocket))
	case FileNonEmpty:
		return statCheck(path, func(fi fs.FileInfo) bool { return fi.Size() > 0 })
	case FileReadable:
		return accessCheck(path, accessRead)
	case FileWritable:
		return accessCheck(path, accessWrite)
	case FileExecutable:
		return accessCheck(path, accessExecute)
	case FileSetuid:
		return statCheck(path, modeSet(fs.ModeSetuid))
	case FileSetgid:
		return statCheck(path, modeSet(fs.ModeSetgid))
	case FileSticky:
		return statCheck(path, modeSet(fs.ModeSticky))
	case FileOwnedByEUID:
		return ownerCheck(path, func(uid, _ uint32) bool { return uid == effectiveUID() })
	case FileOwnedByEGID:
		return ownerCheck(path, func(_, gid uint32) bool { return gid == effectiveGID() })
	case FileSameInode:
		return pairCheck(path, ExpandPath(r.Other), os.SameFile)
	case FileNewerThan:
		return pairCheck(path, ExpandPath(r.Other), func(a, b fs.FileInfo) bool {
			return a.ModTime().After(b.ModTime())
		})
	case FileOlderThan:
		return pairCheck(path, ExpandPath(r.Other), func(a, b fs.FileInfo) bool {
			return a.ModTime().Before(b.ModTime())
		})
	case FileExistsGlob:
		return globAny(path, func(fs.FileInfo) bool { return true })
	case FileNonEmptyGlob:
		return globAny(path, func(fi fs.FileInfo) bool { return fi.Size() > 0 })
	case FileSizeGt:
		return sizeCheck(path, func(n uint64) bool { return n > r.Bytes })
	case FileSizeGe:
		return sizeCheck(path, func(n uint64) bool { return n >= r.Bytes })
	case FileSizeLt:
		return sizeCheck(path, func(n uint64) bool { return n < r.Bytes })
	case FileSizeLe:
		return sizeCheck(path, func(n uint64) bool { return n <= r.Bytes })
	case FileSizeEq:
		return sizeCheck(path, func(n uint64) bool { return n == r.Bytes })
	case FileMtimeOlderThan:
		return e.ageCheck(path, func(secs uint64) bool { return secs > r.Seconds })
	case FileMtimeNewerThan:
		return e.ageCheck(path, func(secs uint64) bool { return secs < r.Seconds })
	}
	return unknownVerb(FamilyFile, r.Verb)
}

func noMetadata(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrNoMetadata, path, err)
}

func modeSet(bit fs.FileMode) func(fs.FileInfo) bool {
	return func(fi fs.FileInfo) bool { return fi.Mode()&bit != 0 }
}

// statCheck follows symlinks. Any stat failure is False.
func statCheck(path string, check func(fs.FileInfo) bool) Result {
	fi, err := os.Stat(path)
	if err != nil {
		return falseBecause(noMetadata(path, err))
	}
	return verdict(check(fi))
}

func sizeCheck(path string, check func(uint64) bool) Result {
	return statCheck(path, func(fi fs.FileInfo) bool {
		return fi.Size() >= 0 && check(uint64(fi.Size()))
	})
}

func pairCheck(first, second string, check func(a, b fs.FileInfo) bool) Result {
	a, err := os.Stat(first)
	if err != nil {
		return falseBecause(noMetadata(first, err))
	}
	b, err := os.Stat(second)
	if err != nil {
		return falseBecause(noMetadata(second, err))
	}
	return verdict(check(a, b))
}

func accessCheck(path string, mode accessMode) Result {
	if err := effectiveAccess(path, mode); err != nil {
		return falseBecause(fmt.Errorf("%w: %s: %v", ErrNoMetadata, path, err))
	}
	return verdict(true)
}

func ownerCheck(path string, check func(uid, gid uint32) bool) Result {
	uid, gid, err := fileOwner(path)
	if err != nil {
		return falseBecause(noMetadata(path, err))
	}
	return verdict(check(uid, gid))
}

// ageCheck compares the whole seconds elapsed since mtime. A modification
// time in the future has no age and is False for both directions.
func (e *Evaluator) ageCheck(path string, check func(secs uint64) bool) Result {
	fi, err := os.Stat(path)
	if err != nil {
		return falseBecause(noMetadata(path, err))
	}
	age := e.now().Sub(fi.ModTime())
	if age < 0 {
		return falseBecause(fmt.Errorf("%w: %s: modification time is in the future", ErrNoMetadata, path))
	}
	return verdict(check(uint64(age / time.Second)))
}

// globAny is True when some match of pattern stats successfully and
// satisfies keep. "**" spans any number of directories, including none.
// A malformed pattern is False.
func globAny(pattern string, keep func(fs.FileInfo) bool) Result {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return falseBecause(fmt.Errorf("%w: glob %q: %v", ErrUnparseable, pattern, err))
	}
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err == nil && keep(fi) {
			return verdict(true)
		}
	}
	return falseBecause(fmt.Errorf("%w: no qualifying match for %q", ErrNoMetadata, pattern))
}
