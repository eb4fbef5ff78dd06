package headless

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// KeyEvent changes the state of a keypad key before the given cycle runs
type KeyEvent struct {
	Cycle uint64
	Key   uint8
	Down  bool
}

// ParseKeyScript parses a comma separated list of <cycle>:<key><+|->
// entries, e.g. "100:5+,160:5-" holds key 5 from cycle 100 to 160. Keys are
// hexadecimal. The result is sorted by cycle.
func ParseKeyScript(script string) ([]KeyEvent, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var events []KeyEvent
	for _, entry := range strings.Split(script, ",") {
		entry = strings.TrimSpace(entry)
		sep := strings.IndexByte(entry, ':')
		if sep < 1 || len(entry) < sep+3 {
			return nil, errors.Errorf("invalid key script entry %q", entry)
		}

		cycle, err := strconv.ParseUint(entry[:sep], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cycle in key script entry %q", entry)
		}

		var down bool
		switch entry[len(entry)-1] {
		case '+':
			down = true
		case '-':
		default:
			return nil, errors.Errorf("key script entry %q must end with + or -", entry)
		}

		key, err := strconv.ParseUint(entry[sep+1:len(entry)-1], 16, 8)
		if err != nil || key > 0xF {
			return nil, errors.Errorf("invalid key in key script entry %q", entry)
		}

		events = append(events, KeyEvent{Cycle: cycle, Key: uint8(key), Down: down})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Cycle < events[j].Cycle
	})
	return events, nil
}
