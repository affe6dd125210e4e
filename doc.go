// Package easypath bundles everyday filesystem chores behind short calls:
// creating and removing folders, reading and writing text, bytes, lines,
// JSON, CSV, YAML and TOML, copying and moving, listing and globbing,
// path-string helpers, permissions and symbolic links.
//
// Every operation is a method on Paths, which binds a filesystem from the
// vfs package to a Config, a zap logger and a Prompter. Package-level
// functions of the same names run against Default(), a Paths over the host
// filesystem configured from EASYPATH_* environment variables.
//
// # Basic usage
//
//	if err := easypath.WriteText("notes/today.txt", "hello\n"); err != nil {
//	    return err
//	}
//	lines, err := easypath.ReadLines("notes/today.txt")
//
// # Options
//
// Behaviour is tuned per call with Option values. Each operation starts from
// its own defaults, so WriteText creates missing parents while TouchFile does
// not unless asked:
//
//	err := p.TouchFile("logs/app.log", easypath.WithParents(true))
//	err = p.WriteJSON("out.json", data, easypath.WithIndent(4), easypath.WithAtomic())
//
// # Errors
//
// Failures are errors.PlatformError values from the errors package carrying a
// code such as NOT_FOUND, ALREADY_EXISTS or CANCELLED and the paths involved:
//
//	if err := p.RemoveFolder("build"); easypath.IsCancelled(err) {
//	    // the user answered no
//	}
//
// # Testing
//
// vfs.NewMemory gives an isolated filesystem, and WithPrompter answers
// confirmation prompts without a terminal:
//
//	p := easypath.New(
//	    easypath.WithFS(vfs.NewMemory()),
//	    easypath.WithWorkingDir("/work"),
//	    easypath.WithPrompter(easypath.PrompterFunc(func(string) (bool, error) { return true, nil })),
//	)
package easypath
