package easypath

// Package-level functions run against Default().

// EnsureDir calls EnsureDir on Default().
func EnsureDir(path string, opts ...Option) (string, error) {
	return Default().EnsureDir(path, opts...)
}

// EnsureParentDir calls EnsureParentDir on Default().
func EnsureParentDir(path string, opts ...Option) (string, error) {
	return Default().EnsureParentDir(path, opts...)
}

// EnsureFile calls EnsureFile on Default().
func EnsureFile(path string, opts ...Option) (string, error) {
	return Default().EnsureFile(path, opts...)
}

// TouchFile calls TouchFile on Default().
func TouchFile(path string, opts ...Option) error {
	return Default().TouchFile(path, opts...)
}

// ReadBytes calls ReadBytes on Default().
func ReadBytes(path string) ([]byte, error) {
	return Default().ReadBytes(path)
}

// WriteBytes calls WriteBytes on Default().
func WriteBytes(path string, data []byte, opts ...Option) error {
	return Default().WriteBytes(path, data, opts...)
}

// AppendBytes calls AppendBytes on Default().
func AppendBytes(path string, data []byte, opts ...Option) error {
	return Default().AppendBytes(path, data, opts...)
}

// ReadText calls ReadText on Default().
func ReadText(path string, opts ...Option) (string, error) {
	return Default().ReadText(path, opts...)
}

// WriteText calls WriteText on Default().
func WriteText(path string, data string, opts ...Option) error {
	return Default().WriteText(path, data, opts...)
}

// AppendText calls AppendText on Default().
func AppendText(path string, data string, opts ...Option) error {
	return Default().AppendText(path, data, opts...)
}

// ReadLines calls ReadLines on Default().
func ReadLines(path string, opts ...Option) ([]string, error) {
	return Default().ReadLines(path, opts...)
}

// WriteLines calls WriteLines on Default().
func WriteLines(path string, lines []string, opts ...Option) error {
	return Default().WriteLines(path, lines, opts...)
}

// DetectEncoding calls DetectEncoding on Default().
func DetectEncoding(path string) (string, error) {
	return Default().DetectEncoding(path)
}

// CreateFolder calls CreateFolder on Default().
func CreateFolder(path string) error {
	return Default().CreateFolder(path)
}

// CreateFolders calls CreateFolders on Default().
func CreateFolders(paths []string) error {
	return Default().CreateFolders(paths)
}

// RemoveFolder calls RemoveFolder on Default().
func RemoveFolder(path string, opts ...Option) error {
	return Default().RemoveFolder(path, opts...)
}

// RemoveFolders calls RemoveFolders on Default().
func RemoveFolders(paths []string, opts ...Option) error {
	return Default().RemoveFolders(paths, opts...)
}

// EmptyFolder calls EmptyFolder on Default().
func EmptyFolder(path string) error {
	return Default().EmptyFolder(path)
}

// ListFolders calls ListFolders on Default().
func ListFolders(path string, opts ...Option) ([]string, error) {
	return Default().ListFolders(path, opts...)
}

// ListFoldersRecursive calls ListFoldersRecursive on Default().
func ListFoldersRecursive(path string) ([]string, error) {
	return Default().ListFoldersRecursive(path)
}

// ListFiles calls ListFiles on Default().
func ListFiles(path string, opts ...Option) ([]string, error) {
	return Default().ListFiles(path, opts...)
}

// ListFilesRecursive calls ListFilesRecursive on Default().
func ListFilesRecursive(path string) ([]string, error) {
	return Default().ListFilesRecursive(path)
}

// ListPaths calls ListPaths on Default().
func ListPaths(path string, opts ...Option) ([]string, error) {
	return Default().ListPaths(path, opts...)
}

// FolderExists calls FolderExists on Default().
func FolderExists(path string) (bool, error) {
	return Default().FolderExists(path)
}

// IsEmptyDir calls IsEmptyDir on Default().
func IsEmptyDir(path string) (bool, error) {
	return Default().IsEmptyDir(path)
}

// CountFiles calls CountFiles on Default().
func CountFiles(path string, opts ...Option) (int, error) {
	return Default().CountFiles(path, opts...)
}

// CountFolders calls CountFolders on Default().
func CountFolders(path string, opts ...Option) (int, error) {
	return Default().CountFolders(path, opts...)
}

// CountEntries calls CountEntries on Default().
func CountEntries(path string, opts ...Option) (int, error) {
	return Default().CountEntries(path, opts...)
}

// GetFolderSize calls GetFolderSize on Default().
func GetFolderSize(path string) (int64, error) {
	return Default().GetFolderSize(path)
}

// CopyFolder calls CopyFolder on Default().
func CopyFolder(src, dst string, opts ...Option) error {
	return Default().CopyFolder(src, dst, opts...)
}

// MoveFolder calls MoveFolder on Default().
func MoveFolder(src, dst string, opts ...Option) error {
	return Default().MoveFolder(src, dst, opts...)
}

// RenameFolder calls RenameFolder on Default().
func RenameFolder(oldPath, newPath string) error {
	return Default().RenameFolder(oldPath, newPath)
}

// GetFolderInfo calls GetFolderInfo on Default().
func GetFolderInfo(path string) (FolderInfo, error) {
	return Default().GetFolderInfo(path)
}

// ReadDirTree calls ReadDirTree on Default().
func ReadDirTree(path string, maxDepth int) ([]string, error) {
	return Default().ReadDirTree(path, maxDepth)
}

// RemoveFile calls RemoveFile on Default().
func RemoveFile(path string, opts ...Option) error {
	return Default().RemoveFile(path, opts...)
}

// FileExists calls FileExists on Default().
func FileExists(path string) (bool, error) {
	return Default().FileExists(path)
}

// RenameFile calls RenameFile on Default().
func RenameFile(oldPath, newPath string) error {
	return Default().RenameFile(oldPath, newPath)
}

// MoveFile calls MoveFile on Default().
func MoveFile(src, dst string, opts ...Option) error {
	return Default().MoveFile(src, dst, opts...)
}

// CopyFile calls CopyFile on Default().
func CopyFile(src, dst string, opts ...Option) error {
	return Default().CopyFile(src, dst, opts...)
}

// GetFileSize calls GetFileSize on Default().
func GetFileSize(path string) (int64, error) {
	return Default().GetFileSize(path)
}

// GetFileInfo calls GetFileInfo on Default().
func GetFileInfo(path string) (FileInfo, error) {
	return Default().GetFileInfo(path)
}

// DetectMIME calls DetectMIME on Default().
func DetectMIME(path string) (string, error) {
	return Default().DetectMIME(path)
}

// GlobPaths calls GlobPaths on Default().
func GlobPaths(path, pattern string) ([]string, error) {
	return Default().GlobPaths(path, pattern)
}

// RglobPaths calls RglobPaths on Default().
func RglobPaths(path, pattern string) ([]string, error) {
	return Default().RglobPaths(path, pattern)
}

// FindFilesByExtension calls FindFilesByExtension on Default().
func FindFilesByExtension(path, ext string) ([]string, error) {
	return Default().FindFilesByExtension(path, ext)
}

// FindFilesByName calls FindFilesByName on Default().
func FindFilesByName(path, name string) ([]string, error) {
	return Default().FindFilesByName(path, name)
}

// AbsolutePath calls AbsolutePath on Default().
func AbsolutePath(path string) (string, error) {
	return Default().AbsolutePath(path)
}

// ResolvePath calls ResolvePath on Default().
func ResolvePath(path string) (string, error) {
	return Default().ResolvePath(path)
}

// RelativePath calls RelativePath on Default().
func RelativePath(path, start string) (string, error) {
	return Default().RelativePath(path, start)
}

// AsURI calls AsURI on Default().
func AsURI(path string) (string, error) {
	return Default().AsURI(path)
}

// ReadJSON calls ReadJSON on Default().
func ReadJSON(path string, v any, opts ...Option) error {
	return Default().ReadJSON(path, v, opts...)
}

// WriteJSON calls WriteJSON on Default().
func WriteJSON(path string, v any, opts ...Option) error {
	return Default().WriteJSON(path, v, opts...)
}

// ReadCSV calls ReadCSV on Default().
func ReadCSV(path string, opts ...Option) ([]map[string]string, error) {
	return Default().ReadCSV(path, opts...)
}

// WriteCSV calls WriteCSV on Default().
func WriteCSV(path string, rows []map[string]string, fieldnames []string, opts ...Option) error {
	return Default().WriteCSV(path, rows, fieldnames, opts...)
}

// ReadYAML calls ReadYAML on Default().
func ReadYAML(path string, v any, opts ...Option) error {
	return Default().ReadYAML(path, v, opts...)
}

// WriteYAML calls WriteYAML on Default().
func WriteYAML(path string, v any, opts ...Option) error {
	return Default().WriteYAML(path, v, opts...)
}

// ReadTOML calls ReadTOML on Default().
func ReadTOML(path string, v any, opts ...Option) error {
	return Default().ReadTOML(path, v, opts...)
}

// WriteTOML calls WriteTOML on Default().
func WriteTOML(path string, v any, opts ...Option) error {
	return Default().WriteTOML(path, v, opts...)
}

// CompressFile calls CompressFile on Default().
func CompressFile(src, dst string, c Compression, opts ...Option) error {
	return Default().CompressFile(src, dst, c, opts...)
}

// DecompressFile calls DecompressFile on Default().
func DecompressFile(src, dst string, opts ...Option) error {
	return Default().DecompressFile(src, dst, opts...)
}

// CurrentDir calls CurrentDir on Default().
func CurrentDir() (string, error) {
	return Default().CurrentDir()
}

// GetPerms calls GetPerms on Default().
func GetPerms() (Perms, error) {
	return Default().GetPerms()
}

// GetPermsFor calls GetPermsFor on Default().
func GetPermsFor(path string) (Perms, error) {
	return Default().GetPermsFor(path)
}

// SetPerms calls SetPerms on Default().
func SetPerms(path string, perms Perms) error {
	return Default().SetPerms(path, perms)
}

// ListAll calls ListAll on Default().
func ListAll() (Listing, error) {
	return Default().ListAll()
}

// GetDiskUsage calls GetDiskUsage on Default().
func GetDiskUsage(path string) (DiskUsage, error) {
	return Default().GetDiskUsage(path)
}

// CreateSymlink calls CreateSymlink on Default().
func CreateSymlink(target, link string, opts ...Option) error {
	return Default().CreateSymlink(target, link, opts...)
}
