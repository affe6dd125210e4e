// Package vfs defines the filesystem interfaces easypath operates on and
// provides go-billy backed implementations of them.
//
// # Interface Hierarchy
//
// The main FS interface is composed of four sub-interfaces:
//
//   - ReadFS: Read-only operations (Open, Stat, ReadDir, ReadFile, Exists)
//   - WriteFS: Write operations (Create, OpenFile, WriteFile, Mkdir, MkdirAll)
//   - ManageFS: File management (Remove, RemoveAll, Rename)
//   - WalkFS: Directory traversal (Walk)
//
// Optional interfaces for provider-specific capabilities:
//
//   - MetadataFS: Metadata operations (Lstat, Chmod, Chtimes)
//   - SymlinkFS: Symbolic link operations (Symlink, Readlink)
//   - TempFS: Temporary files (TempFile)
//   - UsageFS: Capacity of the volume holding a path (DiskUsage)
//   - AccessFS: Permission checks for the current user (Access)
//   - ConcurrentWalkFS: Unordered parallel traversal (WalkConcurrent)
//
// # Providers
//
//	local := vfs.NewLocal()   // host filesystem, every optional interface
//	mem := vfs.NewMemory()    // in-memory, Lstat + SymlinkFS + TempFS
//
// Paths handed to a provider are absolute, OS-native paths. Both providers
// are backed by go-billy.
//
// # Checking Optional Capabilities
//
//	if mfs, ok := filesystem.(vfs.MetadataFS); ok {
//	    mfs.Chmod("/tmp/file.txt", 0600)
//	}
//
// # Thread Safety
//
// Providers are safe for concurrent use by multiple goroutines. File handles
// are not.
package vfs
