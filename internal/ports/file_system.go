package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

// FileSystem is the file access used by the rewriter and the config repository.
// Paths starting with ~ are resolved against the user's home directory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the contents of path. accessMode only applies when the file is created.
	WriteFile(path string, content []byte, accessMode AccessMode) error
	FileExists(path string) (bool, error)
	DirExists(path string) (bool, error)
}
