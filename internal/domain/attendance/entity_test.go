package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   Mark
	}{
		{"Login", MarkPresent},
		{"LOGIN", MarkPresent},
		{"logout after login", MarkPresent},
		{"Present", MarkPresent},
		{"present", MarkPresent},
		{"P", MarkPresent},
		{"p", MarkPresent},
		{" p ", MarkPresent},
		{"Absent", MarkAbsent},
		{"ABS", MarkAbsent},
		{"a", MarkAbsent},
		{"A", MarkAbsent},
		{"Leave", MarkLeave},
		{"on leave", MarkLeave},
		{"l", MarkLeave},
		{"WFH", MarkUnmarked},
		{"half-day", MarkUnmarked},
		{"", MarkUnmarked},
		{"???", MarkUnmarked},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.status))
		})
	}
}

func TestMarkPrecedenceOrder(t *testing.T) {
	t.Parallel()

	// Present dominates Leave dominates Absent dominates Unmarked.
	assert.Greater(t, MarkPresent, MarkLeave)
	assert.Greater(t, MarkLeave, MarkAbsent)
	assert.Greater(t, MarkAbsent, MarkUnmarked)
}

func TestMarkLetter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "P", MarkPresent.Letter())
	assert.Equal(t, "L", MarkLeave.Letter())
	assert.Equal(t, "A", MarkAbsent.Letter())
	assert.Equal(t, "", MarkUnmarked.Letter())
}
