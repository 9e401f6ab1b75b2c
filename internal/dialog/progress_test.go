package dialog

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProgressLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		stoppable bool
		want      ProgressUpdate
	}{
		{
			name: "percent only",
			line: "40\n",
			want: ProgressUpdate{Percent: 40},
		},
		{
			name: "percent and text",
			line: "75 Copying files\n",
			want: ProgressUpdate{Percent: 75, Text: "Copying files"},
		},
		{
			name: "text keeps inner spaces",
			line: "10 a  b ",
			want: ProgressUpdate{Percent: 10, Text: "a  b "},
		},
		{
			name: "non numeric percent",
			line: "abc def",
			want: ProgressUpdate{Percent: 0, Text: "def"},
		},
		{
			name: "crlf",
			line: "5 done\r\n",
			want: ProgressUpdate{Percent: 5, Text: "done"},
		},
		{
			name:      "stop enable",
			line:      "50 stop enable",
			stoppable: true,
			want:      ProgressUpdate{Percent: 50, Stop: StopEnable},
		},
		{
			name:      "stop disable",
			line:      "50 stop disable\n",
			stoppable: true,
			want:      ProgressUpdate{Percent: 50, Stop: StopDisable},
		},
		{
			name: "stop commands are text when not stoppable",
			line: "50 stop enable",
			want: ProgressUpdate{Percent: 50, Text: "stop enable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseProgressLine(tt.line, tt.stoppable))
		})
	}
}

func TestProgressUpdate_Fraction(t *testing.T) {
	require.InDelta(t, 0.0, ProgressUpdate{Percent: -10}.Fraction(), 1e-9)
	require.InDelta(t, 0.42, ProgressUpdate{Percent: 42}.Fraction(), 1e-9)
	require.InDelta(t, 1.0, ProgressUpdate{Percent: 250}.Fraction(), 1e-9)
}

func TestScanProgress(t *testing.T) {
	long := strings.Repeat("y", 200*1024)
	var lines []string

	err := ScanProgress(strings.NewReader("1 a\n2 "+long+"\n3"), func(line string) bool {
		lines = append(lines, line)
		return true
	})

	require.NoError(t, err)
	require.Equal(t, []string{"1 a", "2 " + long, "3"}, lines)
}

func TestScanProgress_StopsWhenAsked(t *testing.T) {
	var lines []string

	err := ScanProgress(strings.NewReader("1\n2\n3\n"), func(line string) bool {
		lines = append(lines, line)
		return len(lines) < 2
	})

	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, lines)
}

func TestScanProgress_LineTooLong(t *testing.T) {
	err := ScanProgress(strings.NewReader(strings.Repeat("z", MaxProgressLine+1)), func(string) bool { return true })

	require.ErrorIs(t, err, bufio.ErrTooLong)
}
