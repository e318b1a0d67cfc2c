package agent

import "context"

// Client generates a short coaching message from an instruction. The engine
// treats every failure identically: it falls back to a deterministic local
// message and never surfaces the error to the writer.
type Client interface {
	Complete(ctx context.Context, instruction string) (string, error)
}
