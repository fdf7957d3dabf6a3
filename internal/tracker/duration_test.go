package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := map[string]struct {
		seconds int64
		want    string
	}{
		"zero":                    {seconds: 0, want: "0s"},
		"under a minute":          {seconds: 59, want: "59s"},
		"exact minute":            {seconds: 60, want: "1m"},
		"minutes with seconds":    {seconds: 125, want: "2m 5s"},
		"just under an hour":      {seconds: 3599, want: "59m 59s"},
		"exact hour":              {seconds: 3600, want: "1h"},
		"hour with minutes":       {seconds: 3665, want: "1h 1m"},
		"hour remainder seconds":  {seconds: 3659, want: "1h"},
		"multiple hours":          {seconds: 7200, want: "2h"},
		"hours truncate seconds":  {seconds: 7384, want: "2h 3m"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FormatDuration(tc.seconds))
		})
	}
}
