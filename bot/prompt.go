package bot

import (
	"context"
	"sync"
)

type promptKey struct {
	chatID int64
	userID int64
}

// prompter hands a user's next message in a chat to a handler that is
// waiting for an answer, such as the clear-all confirmation.
type prompter struct {
	mu      sync.Mutex
	pending map[promptKey]chan string
}

func newPrompter() *prompter {
	return &prompter{pending: make(map[promptKey]chan string)}
}

// listen registers for the user's next message in the chat and returns the
// channel it arrives on. Call stop once the answer is no longer wanted. A newer
// listen for the same user and chat replaces this one.
func (p *prompter) listen(chatID, userID int64) (answers <-chan string, stop func()) {
	key := promptKey{chatID, userID}
	ch := make(chan string, 1)
	p.mu.Lock()
	p.pending[key] = ch
	p.mu.Unlock()

	return ch, func() {
		p.mu.Lock()
		if p.pending[key] == ch {
			delete(p.pending, key)
		}
		p.mu.Unlock()
	}
}

// wait blocks until the user answers in the chat or ctx is done.
func (p *prompter) wait(ctx context.Context, chatID, userID int64) (string, bool) {
	answers, stop := p.listen(chatID, userID)
	defer stop()
	return receive(ctx, answers)
}

func receive(ctx context.Context, answers <-chan string) (string, bool) {
	select {
	case text := <-answers:
		return text, true
	case <-ctx.Done():
		return "", false
	}
}

// deliver passes text to a waiting prompt and reports whether one took it.
func (p *prompter) deliver(chatID, userID int64, text string) bool {
	key := promptKey{chatID, userID}
	p.mu.Lock()
	ch, ok := p.pending[key]
	if ok {
		delete(p.pending, key)
	}
	p.mu.Unlock()
	if !ok {
		return false
	}
	ch <- text
	return true
}
