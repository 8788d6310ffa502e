package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessReplaces(t *testing.T) {
	raw := NewRaw()
	processed := Process(raw)

	assert.Equal(t, Raw, raw.Type, "original is untouched")
	assert.Equal(t, Processed, processed.Type)
}

func TestCountAndValue(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  Counter
		value int
	}{
		{name: "empty", want: Counter{}, value: 0},
		{
			name:  "two raw one processed",
			items: []Item{NewRaw(), NewRaw(), {Type: Processed}},
			want:  Counter{Raw: 2, Processed: 1},
			value: 25,
		},
		{
			name:  "processed only",
			items: []Item{{Type: Processed}, {Type: Processed}},
			want:  Counter{Processed: 2},
			value: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.items)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, got.Value())
			assert.Equal(t, len(tt.items), got.Total())
		})
	}
}

func TestFormatCounter(t *testing.T) {
	assert.Equal(t, "RAW: 2 PROC: 1", FormatCounter("", Counter{Raw: 2, Processed: 1}))
	assert.Equal(t, "Player RAW: 0 PROC: 0", FormatCounter("Player ", Counter{}))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "RAW", Raw.String())
	assert.Equal(t, "PROCESSED", Processed.String())
	assert.Equal(t, "Type(9)", Type(9).String())
	assert.Zero(t, Type(9).Price())
}
