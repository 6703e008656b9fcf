package notification

import "sync"

// Notice is one recorded notification.
type Notice struct {
	Title    string
	Message  string
	Severity Severity
}

// Recorder is a Notifier that remembers every notice, for tests.
type Recorder struct {
	mu      sync.Mutex
	Notices []Notice
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(title, message string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, Notice{Title: title, Message: message, Severity: severity})
}

// Last returns the most recent notice, or a zero Notice when none exist.
func (r *Recorder) Last() Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Notices) == 0 {
		return Notice{}
	}
	return r.Notices[len(r.Notices)-1]
}
