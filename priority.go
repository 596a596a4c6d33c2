package priorityadapter

import "strconv"

// Priority is a severity code in the syslog scheme used by the legacy facility.
// Lower values are more severe. Codes outside the predefined constants are
// valid; they are resolved through the fallback level.
type Priority int

// Standard syslog priorities.
const (
	PriorityEmerg Priority = iota
	PriorityAlert
	PriorityCrit
	PriorityErr
	PriorityWarn
	PriorityNotice
	PriorityInfo
	PriorityDebug
)

var priorityNames = [...]string{
	PriorityEmerg:  "EMERG",
	PriorityAlert:  "ALERT",
	PriorityCrit:   "CRIT",
	PriorityErr:    "ERR",
	PriorityWarn:   "WARN",
	PriorityNotice: "NOTICE",
	PriorityInfo:   "INFO",
	PriorityDebug:  "DEBUG",
}

// String returns the syslog name of p, or PRIORITY(n) for custom codes.
func (p Priority) String() string {
	if p >= 0 && int(p) < len(priorityNames) {
		return priorityNames[p]
	}
	return "PRIORITY(" + strconv.Itoa(int(p)) + ")"
}

// Level is a severity name of the leveled logging interface.
type Level string

// Level names understood by the bundled sinks.
const (
	LevelEmergency Level = "emergency"
	LevelAlert     Level = "alert"
	LevelCritical  Level = "critical"
	LevelError     Level = "error"
	LevelWarning   Level = "warning"
	LevelNotice    Level = "notice"
	LevelInfo      Level = "info"
	LevelDebug     Level = "debug"
)

// Known reports whether l is one of the eight standard level names.
func (l Level) Known() bool {
	switch l {
	case LevelEmergency, LevelAlert, LevelCritical, LevelError,
		LevelWarning, LevelNotice, LevelInfo, LevelDebug:
		return true
	}
	return false
}

// DefaultTranslations returns a fresh copy of the built-in priority table.
func DefaultTranslations() map[Priority]Level {
	return map[Priority]Level{
		PriorityEmerg:  LevelEmergency,
		PriorityAlert:  LevelAlert,
		PriorityCrit:   LevelCritical,
		PriorityErr:    LevelError,
		PriorityWarn:   LevelWarning,
		PriorityNotice: LevelNotice,
		PriorityInfo:   LevelInfo,
		PriorityDebug:  LevelDebug,
	}
}
