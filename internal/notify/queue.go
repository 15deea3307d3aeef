package notify

import "context"

// ChannelQueue is an in-process queue backed by a buffered Go channel. A
// single server owns the whole workflow, so cross-process durability is not
// needed; the Delivery wrapper keeps the worker oblivious to that.
type ChannelQueue struct {
	ch chan *Message
}

func NewChannelQueue(bufferSize int) *ChannelQueue {
	return &ChannelQueue{
		ch: make(chan *Message, bufferSize),
	}
}

func (q *ChannelQueue) Publish(ctx context.Context, msg *Message) error {
	select {
	case q.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ChannelQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.ch:
				if !ok {
					return
				}
				out <- Delivery{
					Data: msg,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- msg
						}
					},
				}
			}
		}
	}()

	return out, nil
}
