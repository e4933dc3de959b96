// Package ipc defines the JSON-lines protocol a desktop host uses to drive the
// gateway over a pipe. Each request and each response is one JSON object per line.
package ipc

// Method names accepted by the server
const (
	MethodExecute          = "execute"
	MethodCurrentDirectory = "current_directory"
	MethodCompletions      = "completions"
)

// ErrorKindProtocol marks malformed requests and unknown methods.
// Gateway failures use the kinds "transport", "command" and "validation".
const ErrorKindProtocol = "protocol"

// Request is sent from the host to deskshell.
type Request struct {
	// ID is chosen by the host and echoed back in the response.
	ID int `json:"id"`
	// Method is one of execute, current_directory, completions.
	Method string `json:"method"`
	// Command is the line to run (execute).
	Command string `json:"command,omitempty"`
	// Partial is the token being completed (completions).
	Partial string `json:"partial,omitempty"`
	// FullLine is the whole line typed so far (completions).
	FullLine string `json:"full_line,omitempty"`
}

// Response is sent from deskshell back to the host.
type Response struct {
	ID          int      `json:"id"`
	Output      string   `json:"output,omitempty"`
	Directory   string   `json:"directory,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	// Shutdown asks the host to exit after rendering Output.
	Shutdown bool   `json:"shutdown,omitempty"`
	Error    *Error `json:"error,omitempty"`
}

// Error describes a failed request.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SupportedMethods lists the methods in the order they are documented
func SupportedMethods() []string {
	return []string{MethodExecute, MethodCurrentDirectory, MethodCompletions}
}
