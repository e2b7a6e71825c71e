package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewGitCommand builds a git invocation running in dir.
func NewGitCommand(dir string, args ...string) *ExecCommand {
	return &ExecCommand{
		Program: "git",
		Dir:     dir,
		Args:    args,
	}
}

// NewCommand builds an arbitrary command running in dir.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Dir:     dir,
		Args:    args,
	}
}
