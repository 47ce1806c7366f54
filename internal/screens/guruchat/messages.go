package guruchat

import "time"

// replyMsg is sent when a guru send finishes, successfully or not.
type replyMsg struct {
	Err error
}

// spinnerTickMsg animates the typing indicator while awaiting a reply.
type spinnerTickMsg time.Time
