// Package logger provides structured logging for buildmeta.
package logger

import (
	"log/slog"
	"net/url"
	"strings"
)

// Attribute keys that always carry secrets.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"credential",
}

const redactedValue = "***REDACTED***"

// redactSensitive masks secrets in a: values under sensitive keys are
// replaced, and passwords embedded in URLs (bzr+ssh://user:pw@host/...)
// are masked wherever they appear.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if s != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
		return slog.String(a.Key, RedactString(s))
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	case slog.KindAny:
		// Command argument lists.
		if args, ok := a.Value.Any().([]string); ok {
			out := make([]string, len(args))
			for i, arg := range args {
				out[i] = RedactString(arg)
			}
			return slog.Any(a.Key, out)
		}
		if err, ok := a.Value.Any().(error); ok {
			if s := err.Error(); RedactString(s) != s {
				return slog.String(a.Key, RedactString(s))
			}
		}
	}
	return a
}

// RedactString masks the password of every URL in value.
func RedactString(value string) string {
	if !strings.Contains(value, "://") || !strings.Contains(value, "@") {
		return value
	}

	fields := strings.Fields(value)
	changed := false
	for i, f := range fields {
		u, err := url.Parse(f)
		if err != nil || u.User == nil {
			continue
		}
		if _, hasPassword := u.User.Password(); hasPassword {
			fields[i] = u.Redacted()
			changed = true
		}
	}
	if !changed {
		return value
	}
	return strings.Join(fields, " ")
}

// IsSensitiveKey reports whether an attribute key names secret content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
