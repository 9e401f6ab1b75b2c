package dialog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, ok := ParseType(typ.String())
		require.True(t, ok, typ.String())
		require.Equal(t, typ, got)
	}

	_, ok := ParseType("messagebox")
	require.False(t, ok)

	_, ok = ParseType("")
	require.False(t, ok)
}

func TestTypes_Count(t *testing.T) {
	require.Len(t, Types(), 15)
	require.Equal(t, "msgbox", Types()[0].String())
	require.Equal(t, "optionselect", Types()[14].String())
}

func TestType_StringUnknown(t *testing.T) {
	require.Equal(t, "unknown", Type(-1).String())
	require.Equal(t, "unknown", Type(99).String())
}

func TestType_Predicates(t *testing.T) {
	tests := []struct {
		typ           Type
		msgbox        bool
		inputbox      bool
		file          bool
		dropdown      bool
		customButtons bool
		dataLine      bool
		timeout       bool
	}{
		{Msgbox, true, false, false, false, true, false, true},
		{OkMsgbox, true, false, false, false, false, false, true},
		{YesNoMsgbox, true, false, false, false, false, false, true},
		{Inputbox, false, true, false, false, true, true, true},
		{SecureStandardInputbox, false, true, false, false, false, true, true},
		{FileSelect, false, false, true, false, false, false, false},
		{FileSave, false, false, true, false, false, false, false},
		{Textbox, false, false, false, false, true, true, true},
		{Progressbar, false, false, false, false, false, false, false},
		{Dropdown, false, false, false, true, true, true, true},
		{StandardDropdown, false, false, false, true, false, true, true},
		{FilteredList, false, false, false, false, true, true, true},
		{OptionSelect, false, false, false, false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			require.Equal(t, tt.msgbox, tt.typ.IsMsgbox())
			require.Equal(t, tt.inputbox, tt.typ.IsInputbox())
			require.Equal(t, tt.file, tt.typ.IsFile())
			require.Equal(t, tt.dropdown, tt.typ.IsDropdown())
			require.Equal(t, tt.customButtons, tt.typ.HasCustomButtons())
			require.Equal(t, tt.dataLine, tt.typ.HasDataLine())
			require.Equal(t, tt.timeout, tt.typ.CanTimeout())
		})
	}
}

func TestType_IsSecure(t *testing.T) {
	require.True(t, SecureInputbox.IsSecure())
	require.True(t, SecureStandardInputbox.IsSecure())
	require.False(t, Inputbox.IsSecure())
	require.False(t, StandardInputbox.IsSecure())
}
