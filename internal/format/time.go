package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/sealion/internal/config"
)

// DateTime formats t with date and time according to config.
// Example output: "2024-01-23 15:04" or "01/23/2024 3:04 PM"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// Date formats only the date portion.
func Date(t time.Time) string {
	return t.Format(dateLayout(configValue("display_date")))
}

// Time formats only the time portion.
func Time(t time.Time) string {
	return t.Format(timeLayout(configValue("display_time")))
}

// Full formats date and time with seconds.
func Full(t time.Time) string {
	layout := timeLayout(configValue("display_time"))
	layout = strings.Replace(layout, ":04", ":04:05", 1)
	return t.Format(dateLayout(configValue("display_date")) + " " + layout)
}

// Ago renders d as a short age such as "3m" or "2d".
func Ago(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return strconv.Itoa(int(d/time.Minute)) + "m"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d/time.Hour)) + "h"
	default:
		return strconv.Itoa(int(d/(24*time.Hour))) + "d"
	}
}

func configValue(key string) string {
	v, _ := config.Get(key)
	return strings.TrimSpace(v)
}

func dateLayout(display string) string {
	switch display {
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// custom Go layout, e.g. "Jan 02"
		return display
	}
}

func timeLayout(display string) string {
	if display == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}
