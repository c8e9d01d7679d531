package tokencheck

// An EventSource produces tokenizer events.  Use the StartStream function
// to start producing into a channel.
type EventSource interface {
	Produce(chan<- Event) error
}

// An EventSink consumes a stream of tokenizer events.
type EventSink interface {
	Consume(<-chan Event) error
}

// StartStream uses the source to start producing events and returns a new
// event stream where these events are produced.  This is always fast because
// the source runs in a goroutine.
//
// As a source can produce errors, a handleError function can be provided.
func StartStream(source EventSource, handleError func(error)) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		err := source.Produce(out)
		if err != nil && handleError != nil {
			handleError(err)
		}
	}()
	return out
}

// ConsumeStream drains the event stream into the sink.
func ConsumeStream(in <-chan Event, sink EventSink) error {
	return sink.Consume(in)
}

// SliceSource replays a fixed slice of events.  It is useful in tests and
// for callers that already hold a tokenizer's complete output.
type SliceSource []Event

var _ EventSource = SliceSource(nil)

func (s SliceSource) Produce(out chan<- Event) error {
	for _, ev := range s {
		out <- ev
	}
	return nil
}
