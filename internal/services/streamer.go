package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Streamer splits a complete response into bounded chunks and emits them at a
// fixed pace, so the client sees the reply arrive incrementally. Chunking and
// pacing are deliberately separate: Chunks is pure, Stream adds the timing.
type Streamer struct {
	ChunkSize int
	Delay     time.Duration
}

func NewStreamer(chunkSize int, delay time.Duration) *Streamer {
	if chunkSize <= 0 {
		chunkSize = 30
	}
	return &Streamer{ChunkSize: chunkSize, Delay: delay}
}

// Chunks splits text into ordered slices of at most ChunkSize bytes.
// Concatenating the result reproduces text exactly; empty input yields no
// chunks.
func (s *Streamer) Chunks(text string) []string {
	if text == "" {
		return nil
	}
	chunks := make([]string, 0, (len(text)+s.ChunkSize-1)/s.ChunkSize)
	for start := 0; start < len(text); start += s.ChunkSize {
		end := start + s.ChunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}

// Stream returns a channel that delivers the chunks of text in order, one per
// pacing interval. The channel is closed after the final chunk, or early if
// ctx is cancelled (client disconnect). The pace does not depend on the
// consumer's read rate.
func (s *Streamer) Stream(ctx context.Context, text string) <-chan string {
	out := make(chan string)

	var limiter *rate.Limiter
	if s.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(s.Delay), 1)
	}

	go func() {
		defer close(out)
		for _, chunk := range s.Chunks(text) {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return
				}
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
