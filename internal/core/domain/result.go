package domain

import "time"

// RunState is the state of a process run.
type RunState string

const (
	// StateInit indicates the process has not been launched yet.
	StateInit RunState = "Init"
	// StateLaunched indicates the process is running.
	StateLaunched RunState = "Launched"
	// StateExited indicates the process terminated and its exit code is known.
	StateExited RunState = "Exited"
	// StateLaunchFailed indicates the process could not be started.
	StateLaunchFailed RunState = "LaunchFailed"
	// StateAborted indicates the step stopped before or during the launch
	// because of cancellation or a resolution failure.
	StateAborted RunState = "Aborted"
)

// Result is the outcome of one build step.
// Success is true exactly when the process exited with code 0.
// ExitCode is diagnostic only and is -1 when no process exited.
type Result struct {
	Success  bool
	ExitCode int
	State    RunState
	Err      error
	// Argv is the command line that was launched, nil when none was built.
	Argv []string
}

// Exited builds the result of a process that terminated with code.
func Exited(code int) Result {
	return Result{Success: code == 0, ExitCode: code, State: StateExited}
}

// Failed builds a non-success result for a step that never produced an exit code.
func Failed(state RunState, err error) Result {
	return Result{ExitCode: -1, State: state, Err: err}
}

// StepRecord is a persisted result of a build step.
type StepRecord struct {
	StepID     string    `json:"step_id,omitzero"`
	ArgvDigest string    `json:"argv_digest,omitzero"`
	Success    bool      `json:"success"`
	ExitCode   int       `json:"exit_code"`
	State      RunState  `json:"state,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
