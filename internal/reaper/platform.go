package reaper

// Platform is the operating system family a sweep runs against. It decides
// which diagnostic and kill commands are used.
type Platform string

const (
	Windows Platform = "windows"
	POSIX   Platform = "posix"
)
