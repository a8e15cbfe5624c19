package services

import "github.com/sirupsen/logrus"

// DiagnosticSink receives raw model replies that could not be decoded so they
// can be inspected later. The raw text must never reach the end user.
type DiagnosticSink interface {
	CaptureRawReply(label, raw string)
}

// LogSink writes a bounded snippet of the undecodable reply to the log.
type LogSink struct{}

func (LogSink) CaptureRawReply(label, raw string) {
	snippet := raw
	if len(snippet) > 2048 {
		snippet = snippet[:2048] + "…"
	}
	logrus.WithFields(logrus.Fields{
		"label": label,
		"bytes": len(raw),
	}).Errorf("undecodable model reply: %s", snippet)
}
