package easypath

import (
	"io/fs"
	"time"
)

// FileInfo is a snapshot of a file taken when it was requested.
type FileInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`

	// Exists is false when nothing was found at Path; the remaining fields
	// are then zero.
	Exists bool `json:"exists"`

	// Extension is the final suffix including the dot, or "" when there is
	// none. Leading dots of hidden files do not count.
	Extension string `json:"extension"`

	// Stem is Name without Extension.
	Stem string `json:"stem"`

	ModTime  time.Time   `json:"mod_time"`
	Mode     fs.FileMode `json:"mode"`
	MimeType string      `json:"mime_type"`
}

// FolderInfo is a snapshot of a folder taken when it was requested.
type FolderInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`

	// Size is the total size in bytes of the files below the folder.
	Size int64 `json:"size"`

	Exists bool `json:"exists"`

	// FileCount and FolderCount count every descendant, not only children.
	FileCount   int `json:"file_count"`
	FolderCount int `json:"folder_count"`

	// Subfolders names the immediate subfolders in lexical order.
	Subfolders []string `json:"subfolders"`

	ModTime time.Time `json:"mod_time"`
}

// Perms is a coarse permission set: what the current user may do with a path,
// or what SetPerms should grant to everyone.
type Perms struct {
	Read    bool `json:"read"`
	Write   bool `json:"write"`
	Execute bool `json:"execute"`
}

// DiskUsage is the capacity of a volume in bytes.
type DiskUsage struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Free  uint64 `json:"free"`
}

// Listing separates the entries of a folder by kind.
type Listing struct {
	Files   []string `json:"files"`
	Folders []string `json:"folders"`
}
