package counter

import "testing"

func TestMessageForCount(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, "count is zero"},
		{1, "count: 1 - still early!"},
		{4, "count: 4 - still early!"},
		{5, "count: 5 - good pace!"},
		{9, "count: 9 - good pace!"},
		{10, "count: 10 - impressive!"},
		{19, "count: 19 - impressive!"},
		{20, "count: 20 - keep it up!"},
		{49, "count: 49 - keep it up!"},
		{50, "🎉 reached 50! congratulations!"},
		{51, "count: 51 - keep it up!"},
		{99, "count: 99 - keep it up!"},
		{100, "🏆 reached 100! excellent!"},
		{101, "count: 101 - keep it up!"},
		{1000, "count: 1000 - keep it up!"},
	}

	for _, c := range cases {
		if got := messageForCount(c.count); got != c.want {
			t.Errorf("messageForCount(%d): expected %q, got %q", c.count, c.want, got)
		}
	}
}

func TestCustomMessage(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{0, "counter set to 0"},
		{7, "counter set to 7"},
		{42, "42 - the answer to life, the universe, and everything!"},
		{100, "100 - a perfect number!"},
		{1000, "counter set to 1000"},
		{1001, "1001 - that's a very large number!"},
		{5000, "5000 - that's a very large number!"},
	}

	for _, c := range cases {
		if got := customMessage(c.value); got != c.want {
			t.Errorf("customMessage(%d): expected %q, got %q", c.value, c.want, got)
		}
	}
}

func TestBatchMessage(t *testing.T) {
	if got := batchMessage(10); got != "incremented by 10 at once! now: 10" {
		t.Errorf("batchMessage(10): got %q", got)
	}
}
