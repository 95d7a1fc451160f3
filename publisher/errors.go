package publisher

import "fmt"

// UsageError reports missing or empty required arguments. It is raised
// before any I/O.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Msg)
}

// ConfigurationError reports an absent or unusable credential or target
// file. It is raised before any network I/O.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *ConfigurationError) Cause() error  { return e.Err }
func (e *ConfigurationError) Unwrap() error { return e.Err }

// RemoteWriteError reports a failure while authenticating to, connecting
// to or writing into the document store.
type RemoteWriteError struct {
	Path string
	Err  error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *RemoteWriteError) Cause() error  { return e.Err }
func (e *RemoteWriteError) Unwrap() error { return e.Err }

// ExitCode maps an invocation result to the process status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
