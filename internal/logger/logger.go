package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	methodColor  = color.New(color.FgMagenta)
)

func stamp() string {
	return timeColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info logs a general message (blue).
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), infoColor.Sprintf(format, args...))
}

// Success logs a success message (green).
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), successColor.Sprintf("✓ "+format, args...))
}

// Warning logs a warning (yellow).
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), warningColor.Sprintf("⚠ "+format, args...))
}

// Error logs an error (red).
func Error(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), errorColor.Sprintf("✗ "+format, args...))
}

// Request logs a completed HTTP request with its status and duration.
func Request(method, path string, statusCode int, duration time.Duration) {
	statusColor := successColor
	switch {
	case statusCode >= 500:
		statusColor = errorColor
	case statusCode >= 400:
		statusColor = warningColor
	case statusCode >= 300:
		statusColor = infoColor
	}

	fmt.Printf("%s %s %-40s %s %s\n",
		stamp(),
		methodColor.Sprintf("%-6s", method),
		path,
		statusColor.Sprintf("[%d]", statusCode),
		timeColor.Sprintf("(%s)", duration.Round(time.Microsecond)))
}
