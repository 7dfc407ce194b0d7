package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var available = []string{"accounts", "transactions", "users"}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      []string
		cancelled bool
		wantErr   bool
	}{
		{name: "single index", input: "1", want: []string{"accounts"}},
		{name: "multiple indices", input: "1,3", want: []string{"accounts", "users"}},
		{name: "spaces tolerated", input: " 2 , 3 ", want: []string{"transactions", "users"}},
		{name: "duplicates collapsed", input: "1,1,2", want: []string{"accounts", "transactions"}},
		{name: "all", input: "all", want: available},
		{name: "all uppercase", input: "ALL", want: available},
		{name: "quit", input: "quit", cancelled: true},
		{name: "quit with spaces", input: "  quit  ", cancelled: true},
		{name: "empty", input: "", wantErr: true},
		{name: "zero index", input: "0", wantErr: true},
		{name: "out of range", input: "4", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "users", wantErr: true},
		{name: "mixed valid and invalid", input: "1,banana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ParseSelection(tt.input, available)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cancelled, sel.Cancelled)
			assert.Equal(t, tt.want, sel.Names)
		})
	}
}

func TestParseSelectionAllCopies(t *testing.T) {
	sel, err := ParseSelection("all", available)
	require.NoError(t, err)

	sel.Names[0] = "mutated"
	assert.Equal(t, "accounts", available[0], "parse must not alias the available slice")
}

func TestPromptSelectionValidFirstTry(t *testing.T) {
	var out bytes.Buffer
	sel, err := PromptSelection(strings.NewReader("1,2\n"), &out, available)
	require.NoError(t, err)

	assert.Equal(t, []string{"accounts", "transactions"}, sel.Names)
	assert.Contains(t, out.String(), "1. accounts")
	assert.Contains(t, out.String(), "3. users")
}

func TestPromptSelectionRepromptsOnInvalid(t *testing.T) {
	var out bytes.Buffer
	sel, err := PromptSelection(strings.NewReader("99\nbanana\n2\n"), &out, available)
	require.NoError(t, err)

	assert.Equal(t, []string{"transactions"}, sel.Names)
	assert.Contains(t, out.String(), "out of range")
}

func TestPromptSelectionQuit(t *testing.T) {
	var out bytes.Buffer
	sel, err := PromptSelection(strings.NewReader("quit\n"), &out, available)
	require.NoError(t, err)
	assert.True(t, sel.Cancelled)
}

func TestPromptSelectionClosedInputCancels(t *testing.T) {
	var out bytes.Buffer
	sel, err := PromptSelection(strings.NewReader(""), &out, available)
	require.NoError(t, err)
	assert.True(t, sel.Cancelled)
}
