package observer

import "tweet-fieldtype/models/entities"

type EventType int

const (
	TweetStoredEvent   EventType = 1
	TweetEnrichedEvent EventType = 2
	TweetRemovedEvent  EventType = 3
)

type Event struct {
	E     EventType
	Field entities.TweetField
}

func NewFieldEvent(e EventType, field entities.TweetField) Event {
	return Event{E: e, Field: field}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	Register(Observer)
	Notify(Event)
}
