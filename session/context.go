package session

// MaxFollowupsInContext bounds how many past Q&A pairs feed each follow-up
// prompt. The full list is retained for display; only this tail reaches the
// model.
const MaxFollowupsInContext = 5

// Followup is one answered follow-up question.
type Followup struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ConversationContext is the snapshot of the most recently completed
// explanation plus its follow-up thread. At most one exists per session;
// it is replaced wholesale on every new top-level explanation and discarded
// when one starts or the panel is disposed.
type ConversationContext struct {
	Code        string
	Language    string
	Explanation string
	Followups   []Followup
}

// Window returns the last MaxFollowupsInContext follow-ups in original
// (oldest-first) order.
func (c *ConversationContext) Window() []Followup {
	if len(c.Followups) <= MaxFollowupsInContext {
		return c.Followups
	}
	return c.Followups[len(c.Followups)-MaxFollowupsInContext:]
}
