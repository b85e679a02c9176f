package models

// FileDescriptor describes one file stored on the remote NAS/FTP share.
type FileDescriptor struct {
	// Path is the full remote path of the file.
	Path string `json:"path"`

	// Name is the base name of the file without directory components.
	Name string `json:"name"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`
}
