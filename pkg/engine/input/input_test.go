package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		code string
		want Intent
	}{
		{"n", Intent{Action: ActionMoveNorth}},
		{"  North ", Intent{Action: ActionMoveNorth}},
		{"arrow_left", Intent{Action: ActionMoveWest}},
		{"e", Intent{Action: ActionMoveEast}},
		{"j", Intent{Action: ActionMoveSouth}},
		{"2", Intent{Action: ActionChoose, Index: 1}},
		{"c", Intent{Action: ActionCancel}},
		{"r", Intent{Action: ActionReroll}},
		{"buy steps_pack", Intent{Action: ActionBuy, Arg: "steps_pack"}},
		{"shop", Intent{Action: ActionShop}},
		{"?", Intent{Action: ActionHelp}},
		{"q", Intent{Action: ActionQuit}},
		{"dump", Intent{Action: ActionDebugMapDump}},
		{"dance", Intent{Action: ActionNone}},
		{"", Intent{Action: ActionNone}},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, Translate(RawInput{Device: DeviceTerminal, Code: tc.code}))
		})
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	got := GetBindingsByAction()
	assert.Equal(t, []string{"arrow_up", "k", "n", "north"}, got[ActionMoveNorth])
	assert.Equal(t, "Reroll Draft", ActionName(ActionReroll))
	assert.Empty(t, got[ActionChoose])
}

func TestReader_ReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("n\r\nbuy key\nlast"), &bytes.Buffer{})

	for _, want := range []string{"n", "buy key", "last"} {
		got, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, want, got.Code)
		assert.Equal(t, DeviceTerminal, got.Device)
		assert.Equal(t, "terminal", got.Device.String())
	}
	_, err := r.Read()
	assert.Error(t, err)
}

func TestReadRaw(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"arrow up", "\x1b[A", "arrow_up", nil},
		{"ss3 arrow", "\x1bOD", "arrow_left", nil},
		{"text", "buy key\r", "buy key", nil},
		{"backspace", "nx\x7f\r", "n", nil},
		{"arrow during text", "ab\x1b[Cc\r", "abc", nil},
		{"ctrl c", "ab\x03", "", ErrInterrupted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readRaw(strings.NewReader(tc.in), &bytes.Buffer{})
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
