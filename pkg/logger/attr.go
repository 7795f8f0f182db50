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

// Command records the shell command under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// RecordID records a cabinet record id under the key "record_id".
func RecordID(id int) slog.Attr {
	return slog.Int("record_id", id)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Path(p string) slog.Attr {
	return slog.String("path", p)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
