package job

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestJobFunc_NilGuard(t *testing.T) {
	t.Parallel()
	var jf Func[int] // nil
	if _, err := jf.Run(context.Background()); !errors.Is(err, ErrNilJobFunc) {
		t.Fatalf("expected ErrNilJobFunc, got %v", err)
	}
}

func TestGo_ResolvesWithValue(t *testing.T) {
	t.Parallel()
	type ctxKey string
	key := ctxKey("k")
	ctx := context.WithValue(context.Background(), key, "v")

	f := Go(ctx, func(c context.Context) (string, error) {
		if got, ok := c.Value(key).(string); !ok || got != "v" {
			return "", fmt.Errorf("context value mismatch: %v", c.Value(key))
		}
		return "ok", nil
	})

	got, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected value %q", got)
	}
	select {
	case <-f.Done():
	default:
		t.Fatalf("Done not closed after Await returned")
	}
}

func TestGo_ErrorPropagation(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("boom")
	f := Go(context.Background(), func(context.Context) (int, error) { return 0, sentinel })
	if _, err := f.Await(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestGo_PanicBecomesError(t *testing.T) {
	t.Parallel()
	f := Go(context.Background(), func(context.Context) (int, error) { panic("kaboom") })
	if _, err := f.Await(context.Background()); err == nil {
		t.Fatalf("expected error from panicking job")
	}
}

func TestGo_ReturnsBeforeWorkFinishes(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	f := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})

	select {
	case <-f.Done():
		t.Fatalf("future resolved before work finished")
	default:
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := f.Await(waitCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded while pending, got %v", err)
	}

	close(release)
	v, err := f.Await(context.Background())
	if err != nil || v != 7 {
		t.Fatalf("unexpected result %d %v", v, err)
	}
}
