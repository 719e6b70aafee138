// Package prompt implements the interactive log source selection: a
// synchronous read-evaluate-reprompt loop over a ranked source list.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tgerrors "github.com/areino/validate-taegis-parser/internal/errors"
	"github.com/areino/validate-taegis-parser/internal/events"
)

// ErrQuit is returned when the operator chooses to quit instead of
// selecting a source. Callers treat it as a clean exit.
var ErrQuit = errors.New("selection aborted by user")

const separator = "================================================================================"

// DisplaySources prints the ranked log source table, 1-indexed.
func DisplaySources(w io.Writer, ranked []events.RankedSource) {
	fmt.Fprintf(w, "\n%s\n", separator)
	fmt.Fprintln(w, "Available Log Sources (sensor_id, sensor_type):")
	fmt.Fprintln(w, separator)

	for i, src := range ranked {
		fmt.Fprintf(w, "%3d. sensor_id='%s' sensor_type='%s' - %d events\n",
			i+1, src.Key.SensorID, src.Key.SensorType, src.Count)
	}

	fmt.Fprintln(w, separator)
}

// SelectSource prompts until the operator picks a source by number or quits.
// An integer in [1, len(ranked)] selects that source; "q" (or end of input)
// returns ErrQuit; anything else re-prompts. An empty ranked list returns
// ErrNoSources without prompting.
func SelectSource(in io.Reader, out io.Writer, ranked []events.RankedSource) (events.GroupKey, error) {
	if len(ranked) == 0 {
		return events.GroupKey{}, tgerrors.ErrNoSources
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\nSelect a log source (1-%d) or 'q' to quit: ", len(ranked))

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return events.GroupKey{}, err
			}
			// End of input behaves like quitting.
			return events.GroupKey{}, ErrQuit
		}

		choice := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(choice, "q") {
			return events.GroupKey{}, ErrQuit
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number or 'q' to quit")
			continue
		}
		if n < 1 || n > len(ranked) {
			fmt.Fprintf(out, "Please enter a number between 1 and %d\n", len(ranked))
			continue
		}

		key := ranked[n-1].Key
		fmt.Fprintf(out, "\nSelected: sensor_id='%s' sensor_type='%s'\n", key.SensorID, key.SensorType)
		return key, nil
	}
}
