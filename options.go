package easypath

import "io/fs"

// ErrorMode selects how text encoding and decoding treat bytes or runes the
// encoding cannot represent.
type ErrorMode int

const (
	// ErrorsStrict fails the operation.
	ErrorsStrict ErrorMode = iota
	// ErrorsReplace substitutes a replacement character.
	ErrorsReplace
	// ErrorsIgnore drops the offending input.
	ErrorsIgnore
)

// String returns the name of the mode.
func (m ErrorMode) String() string {
	switch m {
	case ErrorsReplace:
		return "replace"
	case ErrorsIgnore:
		return "ignore"
	default:
		return "strict"
	}
}

// Option adjusts a single call. Each operation starts from its own defaults
// and ignores options it has no use for.
type Option func(*options)

type options struct {
	parents   bool
	existOK   bool
	overwrite bool
	missingOK bool
	recursive bool
	confirm   bool
	force     bool
	dryRun    bool
	atomic    bool
	files     bool
	dirs      bool
	sortKeys  bool
	encoding  string
	errors    ErrorMode
	newline   *string
	perm      fs.FileMode
	dirPerm   fs.FileMode
	indent    int
	delimiter rune
}

// options seeds per-call settings from the configuration, then applies the
// operation's defaults followed by the caller's options.
func (p *Paths) options(opts []Option, defaults ...Option) *options {
	o := &options{
		confirm:   p.cfg.Confirm,
		files:     true,
		dirs:      true,
		sortKeys:  true,
		encoding:  p.cfg.Encoding,
		perm:      p.cfg.FilePerm,
		dirPerm:   p.cfg.DirPerm,
		indent:    p.cfg.JSONIndent,
		delimiter: ',',
	}
	for _, opt := range defaults {
		opt(o)
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithParents controls whether missing parent folders are created.
func WithParents(parents bool) Option {
	return func(o *options) {
		o.parents = parents
	}
}

// WithExistOK controls whether an existing target is acceptable.
func WithExistOK(ok bool) Option {
	return func(o *options) {
		o.existOK = ok
	}
}

// WithOverwrite allows replacing an existing destination.
func WithOverwrite() Option {
	return func(o *options) {
		o.overwrite = true
	}
}

// WithMissingOK makes removing a path that does not exist succeed.
func WithMissingOK() Option {
	return func(o *options) {
		o.missingOK = true
	}
}

// Recursive descends into subfolders.
func Recursive() Option {
	return func(o *options) {
		o.recursive = true
	}
}

// WithConfirm overrides Config.Confirm for one call.
func WithConfirm(confirm bool) Option {
	return func(o *options) {
		o.confirm = confirm
	}
}

// WithForce skips the confirmation prompt.
func WithForce() Option {
	return func(o *options) {
		o.force = true
	}
}

// WithDryRun logs what would be removed without removing it.
func WithDryRun() Option {
	return func(o *options) {
		o.dryRun = true
	}
}

// WithEncoding selects the text encoding by IANA or WHATWG name, for example
// "utf-8", "latin1" or "shift_jis". "auto" detects it when reading.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithErrors selects how unencodable text is handled.
func WithErrors(mode ErrorMode) Option {
	return func(o *options) {
		o.errors = mode
	}
}

// WithNewline replaces every "\n" in written text with newline. For
// WriteLines it is the terminator appended to each line.
func WithNewline(newline string) Option {
	return func(o *options) {
		o.newline = &newline
	}
}

// WithPerm sets the mode of files created by the call.
func WithPerm(perm fs.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithIndent sets the indentation width of WriteJSON and WriteYAML.
// A negative width writes compact JSON.
func WithIndent(n int) Option {
	return func(o *options) {
		o.indent = n
	}
}

// WithSortKeys controls whether WriteJSON sorts object keys.
func WithSortKeys(sort bool) Option {
	return func(o *options) {
		o.sortKeys = sort
	}
}

// WithDelimiter sets the CSV field delimiter.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.delimiter = r
	}
}

// WithAtomic writes to a temporary file beside the target and renames it
// into place, so readers never observe a partial write.
func WithAtomic() Option {
	return func(o *options) {
		o.atomic = true
	}
}

// WithFiles controls whether ListPaths includes files.
func WithFiles(include bool) Option {
	return func(o *options) {
		o.files = include
	}
}

// WithDirs controls whether ListPaths includes folders.
func WithDirs(include bool) Option {
	return func(o *options) {
		o.dirs = include
	}
}
