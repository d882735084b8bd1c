package toolchain

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// CommandExecutor defines an interface for executing external toolchain
// commands. This abstraction enables unit testing without a real toolchain.
type CommandExecutor interface {
	// Run executes the command to completion and returns captured stdout and
	// stderr. A non-zero exit is reported as a non-nil error alongside
	// whatever output was captured.
	Run() (stdout, stderr []byte, err error)
}

// CommandBuilder defines an interface for constructing toolchain commands.
type CommandBuilder interface {
	// BuildCommand creates a CommandExecutor for name run in dir with the
	// given extra environment entries appended to the process environment.
	BuildCommand(ctx context.Context, dir, name string, env []string, args ...string) CommandExecutor
}

// RealCommandExecutor wraps exec.Cmd to implement CommandExecutor.
type RealCommandExecutor struct {
	cmd *exec.Cmd
}

// Run executes the command and returns captured stdout and stderr.
func (r *RealCommandExecutor) Run() ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	r.cmd.Stdout = &stdout
	r.cmd.Stderr = &stderr
	err := r.cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// RealCommandBuilder implements CommandBuilder using exec.CommandContext.
type RealCommandBuilder struct{}

// NewRealCommandBuilder creates a new RealCommandBuilder.
func NewRealCommandBuilder() *RealCommandBuilder {
	return &RealCommandBuilder{}
}

// BuildCommand creates a CommandExecutor for the given command.
func (b *RealCommandBuilder) BuildCommand(ctx context.Context, dir, name string, env []string, args ...string) CommandExecutor {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	return &RealCommandExecutor{cmd: cmd}
}

// MockBuiltCommand records details of a command built by MockCommandBuilder.
type MockBuiltCommand struct {
	Dir  string
	Name string
	Env  []string
	Args []string
}

// MockCommandExecutor implements CommandExecutor for testing.
type MockCommandExecutor struct {
	// Stdout is the stdout to return from Run.
	Stdout []byte
	// Stderr is the stderr to return from Run.
	Stderr []byte
	// Err is the error to return from Run.
	Err error
	// OnRun, if set, is invoked when Run is called, before the configured
	// results are returned. It receives the built command.
	OnRun func(cmd MockBuiltCommand) error
	// RunCalled indicates whether Run was called.
	RunCalled bool

	built MockBuiltCommand
}

// Run returns the configured output and error.
func (m *MockCommandExecutor) Run() ([]byte, []byte, error) {
	m.RunCalled = true
	if m.OnRun != nil {
		if err := m.OnRun(m.built); err != nil {
			return m.Stdout, m.Stderr, err
		}
	}
	return m.Stdout, m.Stderr, m.Err
}

// MockCommandBuilder implements CommandBuilder for testing.
type MockCommandBuilder struct {
	// Commands records all commands that were built.
	Commands []MockBuiltCommand
	// ExecutorFactory allows creating executors dynamically per command. If
	// nil, a default successful MockCommandExecutor is returned.
	ExecutorFactory func(cmd MockBuiltCommand) *MockCommandExecutor
}

// NewMockCommandBuilder creates a new MockCommandBuilder.
func NewMockCommandBuilder() *MockCommandBuilder {
	return &MockCommandBuilder{}
}

// BuildCommand records the command details and returns a mock executor.
func (b *MockCommandBuilder) BuildCommand(_ context.Context, dir, name string, env []string, args ...string) CommandExecutor {
	built := MockBuiltCommand{Dir: dir, Name: name, Env: env, Args: args}
	b.Commands = append(b.Commands, built)

	var executor *MockCommandExecutor
	if b.ExecutorFactory != nil {
		executor = b.ExecutorFactory(built)
	} else {
		executor = &MockCommandExecutor{}
	}
	executor.built = built
	return executor
}

// LastCommand returns the most recently built command, or nil if none.
func (b *MockCommandBuilder) LastCommand() *MockBuiltCommand {
	if len(b.Commands) == 0 {
		return nil
	}
	return &b.Commands[len(b.Commands)-1]
}

// Reset clears all recorded commands.
func (b *MockCommandBuilder) Reset() {
	b.Commands = nil
}
