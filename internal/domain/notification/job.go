package notification

// Job is an outbound email notice. Jobs are ephemeral: they exist only
// inside the queue between enqueue and delivery and are never persisted
// or cancelled.
type Job struct {
	To      string
	Subject string
	Body    string
}
