// ABOUTME: Live-refresh loop for list commands, driven by a view.Loader.
// ABOUTME: Ctrl-C cancels the in-flight request and ends the loop.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/view"
)

const clearScreen = "\033[H\033[2J"

// watch reloads fetch every interval and re-renders on each change until
// interrupted.
func watch[T any](interval time.Duration, fetch func(context.Context) (T, error), render func(T)) error {
	if interval < time.Second {
		return fmt.Errorf("interval must be at least 1s, got %s", interval)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := view.NewLoader[T]()
	defer loader.Close()

	loader.OnChange(func(st view.State[T]) {
		if st.Loading {
			return
		}
		fmt.Print(clearScreen)
		fmt.Println(color.New(color.Faint).Sprintf("Updated %s  (every %s, Ctrl-C to stop)",
			time.Now().Format("15:04:05"), interval))
		fmt.Println()
		if st.Err != nil {
			color.Yellow("⚠ %s", userMessage(st.Err))
		}
		if st.HasData {
			render(st.Data)
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := loader.Load(ctx, fetch)
		if err != nil && ctx.Err() == nil && !errors.Is(err, view.ErrSuperseded) {
			logger.Debug("refresh failed", "err", err)
		}

		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
		}
	}
}
