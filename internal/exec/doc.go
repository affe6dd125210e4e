// Package exec runs external commands and captures their output.
//
// easypath only shells out on Windows, where permission changes go through
// icacls. Callers depend on the Runner interface so tests can substitute a
// recorder for the real process runner:
//
//	icacls := exec.NewWrapper(exec.New(exec.WithTimeout(30*time.Second)), "icacls")
//	res, err := icacls.Run(ctx, `C:\data\report.txt`, "/grant:r", "everyone:(R)")
//
// A command that starts but exits non-zero returns both a Result and an
// *ExecError carrying the exit code and captured streams.
package exec
