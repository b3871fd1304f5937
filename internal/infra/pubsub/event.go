package pubsub

import (
	"cheeserater/internal/domain/service"

	"github.com/bytedance/sonic"
)

// encodeEvent serializes the event body shared by every provider.
func encodeEvent(event *service.ChangeEvent) ([]byte, error) {
	return sonic.ConfigStd.Marshal(event)
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.ChangeEvent) map[string]string {
	attributes := map[string]string{
		"document": event.Document,
		"action":   event.Action,
	}
	if event.SubjectID != "" {
		attributes["subject_id"] = event.SubjectID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
