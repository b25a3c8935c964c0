package cli

import "github.com/patbeagan1/is-test/internal/predicate"

func pathLeaf(verb predicate.Verb, short string, aliases ...string) leaf {
	return leaf{
		verb:     verb,
		aliases:  aliases,
		operands: []operand{op("path", kindPath)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.FileRequest{Verb: verb, Path: o.str(0)}
		},
	}
}

func pathPairLeaf(verb predicate.Verb, short string, aliases ...string) leaf {
	return leaf{
		verb:     verb,
		aliases:  aliases,
		operands: []operand{op("path1", kindPath), op("path2", kindPath)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.FileRequest{Verb: verb, Path: o.str(0), Other: o.str(1)}
		},
	}
}

func globLeaf(verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("pattern", kindPattern)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.FileRequest{Verb: verb, Path: o.str(0)}
		},
	}
}

func sizeLeaf(verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("path", kindPath), op("bytes", kindUnsigned)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.FileRequest{Verb: verb, Path: o.str(0), Bytes: o.uint64(1)}
		},
	}
}

func mtimeLeaf(verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("path", kindPath), op("seconds", kindUnsigned)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.FileRequest{Verb: verb, Path: o.str(0), Seconds: o.uint64(1)}
		},
	}
}

var fileFamily = family{
	name:  predicate.FamilyFile,
	short: "File-related checks",
	leaves: []leaf{
		pathLeaf(predicate.FileExists, "Path exists, following symlinks (-e)"),
		pathLeaf(predicate.FileDirectory, "Path is a directory (-d)"),
		pathLeaf(predicate.FileRegular, "Path is a regular file (-f)", "file", "regular-file"),
		pathLeaf(predicate.FileSymlink, "Path is a symbolic link, not dereferenced (-h, -L)", "link"),
		pathLeaf(predicate.FileBlockDevice, "Path is a block special file (-b)"),
		pathLeaf(predicate.FileCharDevice, "Path is a character special file (-c)"),
		pathLeaf(predicate.FileNamedPipe, "Path is a named pipe (-p)", "fifo"),
		pathLeaf(predicate.FileSocket, "Path is a socket (-S)"),
		pathLeaf(predicate.FileNonEmpty, "File exists and is larger than zero bytes (-s)"),
		pathLeaf(predicate.FileReadable, "Readable with effective credentials (-r)"),
		pathLeaf(predicate.FileWritable, "Writable with effective credentials (-w)"),
		pathLeaf(predicate.FileExecutable, "Executable with effective credentials (-x)"),
		pathLeaf(predicate.FileSetuid, "Set-user-ID bit is set (-u)"),
		pathLeaf(predicate.FileSetgid, "Set-group-ID bit is set (-g)"),
		pathLeaf(predicate.FileSticky, "Sticky bit is set (-k)"),
		pathLeaf(predicate.FileOwnedByEUID, "Owned by the effective user ID (-O)"),
		pathLeaf(predicate.FileOwnedByEGID, "Owned by the effective group ID (-G)"),
		pathPairLeaf(predicate.FileSameInode, "Both paths name the same device and inode (-ef)", "same-inode"),
		pathPairLeaf(predicate.FileNewerThan, "First file was modified after the second (-nt)"),
		pathPairLeaf(predicate.FileOlderThan, "First file was modified before the second (-ot)"),
		globLeaf(predicate.FileExistsGlob, "Some path matching the glob exists"),
		globLeaf(predicate.FileNonEmptyGlob, "Some file matching the glob is larger than zero bytes"),
		sizeLeaf(predicate.FileSizeGt, "File size is greater than bytes"),
		sizeLeaf(predicate.FileSizeGe, "File size is at least bytes"),
		sizeLeaf(predicate.FileSizeLt, "File size is less than bytes"),
		sizeLeaf(predicate.FileSizeLe, "File size is at most bytes"),
		sizeLeaf(predicate.FileSizeEq, "File size equals bytes"),
		mtimeLeaf(predicate.FileMtimeOlderThan, "Last modified more than seconds ago"),
		mtimeLeaf(predicate.FileMtimeNewerThan, "Last modified less than seconds ago"),
	},
}
