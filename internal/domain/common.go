package domain

// Session represents the market trading session during which a trade occurred.
// The empty string means the session was not recorded.
type Session string

const (
	SessionLondon  Session = "london"
	SessionNewYork Session = "new_york"
	SessionAsia    Session = "asia"
)

// Sentiment represents the user's self-reported emotional state at trade time.
// The empty string means the sentiment was not recorded.
type Sentiment string

const (
	SentimentCalm     Sentiment = "calm" // "serein" in the journal UI
	SentimentStressed Sentiment = "stressed"
	SentimentAngry    Sentiment = "angry"
	SentimentFOMO     Sentiment = "fomo"
)

// SetupUnknown is the bucket used when grouping noncompliant trades whose
// setup was never recorded.
const SetupUnknown = "Unknown"

// Label returns the session name as shown to the user.
func (s Session) Label() string {
	switch s {
	case SessionLondon:
		return "London"
	case SessionNewYork:
		return "New York"
	case SessionAsia:
		return "Asia"
	default:
		return string(s)
	}
}

// Label returns the sentiment name as shown to the user.
func (s Sentiment) Label() string {
	switch s {
	case SentimentCalm:
		return "Calm"
	case SentimentStressed:
		return "Stressed"
	case SentimentAngry:
		return "Angry"
	case SentimentFOMO:
		return "FOMO"
	default:
		return string(s)
	}
}
