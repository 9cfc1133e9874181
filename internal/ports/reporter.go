package ports

// Reporter receives progress from a rewrite run as it happens.
type Reporter interface {
	DirectoryNotFound(abiDir string)
	FileNotFound(path string)
	Processing(path string)
	Fixed(path string)
	Done()
}
