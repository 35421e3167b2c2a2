package events

// Feedback is the fire-and-forget audio/haptic sink
// Implementations must not block; each call corresponds to exactly one triggering event
type Feedback interface {
	OnCollect()
	OnHit()
	OnJump()
}

// FeedbackHandler adapts a Feedback sink to the router
type FeedbackHandler struct {
	sink Feedback
}

// NewFeedbackHandler wraps sink; a nil sink yields a handler that drops everything
func NewFeedbackHandler(sink Feedback) *FeedbackHandler {
	return &FeedbackHandler{sink: sink}
}

func (h *FeedbackHandler) EventTypes() []EventType {
	return []EventType{EventCollect, EventHit, EventJump}
}

func (h *FeedbackHandler) HandleEvent(ev GameEvent) {
	if h.sink == nil {
		return
	}
	switch ev.Type {
	case EventCollect:
		h.sink.OnCollect()
	case EventHit:
		h.sink.OnHit()
	case EventJump:
		h.sink.OnJump()
	}
}
