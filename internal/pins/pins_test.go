package pins

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn(t *testing.T) {
	want := map[int]int{1: 3, 2: 2, 3: 4, 4: 1, 5: 3, 6: 5, 7: 0, 8: 2, 9: 4, 10: 6}
	for pin, col := range want {
		got, ok := Column(pin)
		assert.True(t, ok, "pin %d should be valid", pin)
		assert.Equal(t, col, got, "column of pin %d", pin)
	}

	for _, pin := range []int{-1, 0, 11} {
		_, ok := Column(pin)
		assert.False(t, ok, "pin %d should not map to a column", pin)
	}
}

func TestPinsInColumn(t *testing.T) {
	assert.Equal(t, []int{7}, PinsInColumn(0))
	assert.Equal(t, []int{2, 8}, PinsInColumn(2))
	assert.Equal(t, []int{1, 5}, PinsInColumn(3))
	assert.Equal(t, []int{10}, PinsInColumn(6))
	assert.Empty(t, PinsInColumn(7))
}

func TestPresence_String(t *testing.T) {
	var p Presence
	assert.Equal(t, "0000000", p.String())

	p.Mark(7)
	p.Mark(10)
	assert.Equal(t, "1000001", p.String())

	// duplicates and pins sharing a column collapse
	p.Mark(2)
	p.Mark(8)
	p.Mark(8)
	assert.Equal(t, "1010001", p.String())
	assert.Len(t, p.String(), ColumnCount)
}

func TestPresence_HasGap(t *testing.T) {
	tests := []struct {
		name string
		pins []int
		want bool
	}{
		{"empty", nil, false},
		{"single column", []int{10}, false},
		{"adjacent columns", []int{6, 10}, false},
		{"bed posts", []int{7, 10}, true},
		{"four six", []int{4, 6}, true},
		{"two eight stacked", []int{2, 8}, false},
		{"baby split", []int{3, 10}, true},
		{"filled in", []int{4, 2, 5, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Presence
			for _, pin := range tt.pins {
				p.Mark(pin)
			}
			assert.Equal(t, tt.want, p.HasGap(), "vector %s", p)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		want     int
		wantKind ErrorKind
		wantErr  bool
	}{
		{token: "1", want: 1},
		{token: "10", want: 10},
		{token: "+7", want: 7},
		{token: "x", wantErr: true, wantKind: IllegalValue},
		{token: "", wantErr: true, wantKind: IllegalValue},
		{token: "5.0", wantErr: true, wantKind: IllegalValue},
		{token: " 5", wantErr: true, wantKind: IllegalValue},
		{token: "99999999999999999999", wantErr: true, wantKind: IllegalValue},
		{token: "-1", wantErr: true, wantKind: TooSmall},
		{token: "0", wantErr: true, wantKind: TooSmall},
		{token: "11", wantErr: true, wantKind: TooBig},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var pe *PinError
			require.True(t, errors.As(err, &pe), "expected *PinError, got %v", err)
			assert.Equal(t, tt.wantKind, pe.Kind)
			assert.Equal(t, tt.token, pe.Token)
		})
	}
}

func TestPinError_Messages(t *testing.T) {
	assert.Equal(t, "Illegal number", (&PinError{Kind: IllegalValue}).Error())
	assert.Equal(t, "Number too small", (&PinError{Kind: TooSmall}).Error())
	assert.Equal(t, "Number too big", (&PinError{Kind: TooBig}).Error())
	assert.Equal(t, "too_big", TooBig.String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		raw         []string
		wantHead    bool
		wantColumns string
		wantSplit   bool
	}{
		{name: "seven ten", raw: []string{"7", "10"}, wantColumns: "1000001", wantSplit: true},
		{name: "six ten", raw: []string{"6", "10"}, wantColumns: "0000011"},
		{name: "four six", raw: []string{"4", "6"}, wantColumns: "0100010", wantSplit: true},
		{name: "head pin first", raw: []string{"1", "7", "10"}, wantHead: true},
		{name: "head pin last", raw: []string{"7", "10", "1"}, wantHead: true},
		{name: "head pin stops before bad token", raw: []string{"1", "x"}, wantHead: true},
		{name: "duplicates", raw: []string{"7", "7", "10", "10"}, wantColumns: "1000001", wantSplit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHead, c.HeadPin)
			if !tt.wantHead {
				assert.Equal(t, tt.wantColumns, c.Columns.String())
			}
			assert.Equal(t, tt.wantSplit, c.IsSplit())
		})
	}
}

func TestClassify_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		wantMsg string
	}{
		{"illegal first", []string{"x", "5"}, MessageIllegalValue},
		{"illegal last", []string{"5", "x"}, MessageIllegalValue},
		{"too big", []string{"11"}, MessageTooBig},
		{"too small", []string{"-1"}, MessageTooSmall},
		{"error before head pin", []string{"11", "1"}, MessageTooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify(tt.raw)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, Classification{}, c)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	raw := []string{"4", "6", "7"}
	first, err := Classify(raw)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Classify(raw)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
