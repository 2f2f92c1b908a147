package counter

import "fmt"

const (
	// initialMessage is the prompt shown before any action has run.
	initialMessage = "press the button to start counting"

	// resetMessage replaces the prompt after a reset. It is deliberately
	// not the initial prompt.
	resetMessage = "counter was reset"

	// negativeValueMessage is published when SetCount receives a negative
	// value. The count and loading flag are left untouched.
	negativeValueMessage = "error: negative values are not allowed"
)

// messageForCount picks the status line for a count reached by
// incrementing. Rules run top to bottom, first match wins; the exact-value
// rules sit below the threshold chain, so they only fire for counts the
// thresholds let through (50 and 100).
func messageForCount(count int) string {
	switch {
	case count == 0:
		return "count is zero"
	case count < 5:
		return fmt.Sprintf("count: %d - still early!", count)
	case count < 10:
		return fmt.Sprintf("count: %d - good pace!", count)
	case count < 20:
		return fmt.Sprintf("count: %d - impressive!", count)
	case count == 50:
		return "🎉 reached 50! congratulations!"
	case count == 100:
		return "🏆 reached 100! excellent!"
	default:
		return fmt.Sprintf("count: %d - keep it up!", count)
	}
}

// customMessage picks the confirmation line for an explicitly set value.
// First match wins.
func customMessage(value int) string {
	switch {
	case value == 0:
		return "counter set to 0"
	case value == 42:
		return "42 - the answer to life, the universe, and everything!"
	case value == 100:
		return "100 - a perfect number!"
	case value > 1000:
		return fmt.Sprintf("%d - that's a very large number!", value)
	default:
		return fmt.Sprintf("counter set to %d", value)
	}
}

// batchMessage is the fixed template for the ten-at-once increment.
func batchMessage(count int) string {
	return fmt.Sprintf("incremented by 10 at once! now: %d", count)
}
