package report

import "roomreport/internal/model/message"

// Period names a relative time window resolved to absolute timestamps at
// request time. Unrecognized values deliberately fall back to the 7-day
// window rather than failing.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period30Days    Period = "30days"
	PeriodYear      Period = "year"

	DefaultPeriod = Period7Days
)

// Language selects the output language of the generated report.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageDutch   Language = "nl"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"

	DefaultLanguage = LanguageEnglish
)

// Name returns the display name used in the language directive. Unknown
// codes default to English.
func (l Language) Name() string {
	switch l {
	case LanguageDutch:
		return "Dutch"
	case LanguageSpanish:
		return "Spanish"
	case LanguageFrench:
		return "French"
	default:
		return "English"
	}
}

// TimeRange is a half-open [Start, End) interval in epoch milliseconds. The
// now-ended periods set End to the current instant.
type TimeRange struct {
	Start int64
	End   int64
}

// Request describes one report invocation.
type Request struct {
	RoomID   string
	Period   Period
	Language Language
}

// Result is the successful outcome of the report pipeline. MessageCount is
// zero exactly when the period contained no messages, in which case Report
// holds the "no messages" notice and no LLM call was made.
type Result struct {
	Report       string
	Messages     []message.Message
	MessageCount int
	PeriodLabel  string
}
