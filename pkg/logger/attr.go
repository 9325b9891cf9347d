package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Channel records the delivery channel under the key "channel".
func Channel(name string) slog.Attr {
	return slog.String("channel", name)
}

// Recipient records the delivery address under the key "recipient".
func Recipient(address string) slog.Attr {
	return slog.String("recipient", address)
}

// BroadcastID records the broadcast identifier under the key "broadcast_id".
// If id is empty, it returns an empty Attr.
func BroadcastID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("broadcast_id", id)
}

// AlertLevel records the alert severity under the key "alert_level".
func AlertLevel(level string) slog.Attr {
	return slog.String("alert_level", level)
}

// Location records the alert location under the key "location".
func Location(location string) slog.Attr {
	return slog.String("location", location)
}

// UserID records the user identifier under the key "user_id".
func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}
