package importer

// Step names the stage a progress notification belongs to. The stream
// is append-only and ends with the first done or error step.
type Step string

const (
	StepParsing    Step = "parsing"
	StepValidating Step = "validating"
	StepImporting  Step = "importing"
	StepDone       Step = "done"
	StepError      Step = "error"
)

// Notification is one message in the progress stream. Importing steps
// carry Current/Total/Imported/Skipped; the done step carries final
// Imported/Skipped/Errors; the error step carries Message.
type Notification struct {
	Step     Step   `json:"step"`
	Message  string `json:"message,omitempty"`
	Current  int64  `json:"current,omitempty"`
	Total    int64  `json:"total,omitempty"`
	Imported int64  `json:"imported,omitempty"`
	Skipped  int64  `json:"skipped,omitempty"`
	Errors   int64  `json:"errors,omitempty"`
}

// Terminal reports whether the notification ends the stream.
func (n Notification) Terminal() bool {
	return n.Step == StepDone || n.Step == StepError
}

// Sink receives progress notifications. Notify is called synchronously
// from the import loop, so a slow sink slows the import; buffer in the
// sink if that matters.
type Sink interface {
	Notify(Notification)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// Discard is a Sink that drops every notification.
var Discard Sink = SinkFunc(func(Notification) {})
