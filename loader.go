package inflect

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// load reads the tab-separated inflection data file into the word map and the
// inverted index.
//
// Each line carries a base form followed by tab-separated fields. A field is
// either "label:v1,v2,..." with label one of the recognized categories, or
// "i:<float>" giving the occurrence cost. Loading is lenient per field: lines
// with fewer than two fields are skipped, fields without exactly one colon
// are ignored, unrecognized labels are ignored. Only an unreadable source is
// fatal.
func (inf *Inflector) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open inflection data: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Split(strings.TrimSpace(sc.Text()), "\t")
		if len(fields) < 2 {
			continue
		}
		base := fields[0]
		rec := &record{forms: make(map[Label][]string)}
		for _, field := range fields[1:] {
			kv := strings.Split(field, ":")
			if len(kv) != 2 {
				continue
			}
			label := Label(kv[0])
			switch {
			case label == "i":
				cost, err := strconv.ParseFloat(kv[1], 64)
				if err == nil {
					rec.cost = cost
				}
			default:
				if _, recognized := categoryCosts[label]; !recognized {
					continue
				}
				values := strings.Split(kv[1], ",")
				if _, dup := rec.forms[label]; !dup {
					rec.labels = append(rec.labels, label)
				}
				rec.forms[label] = values
				seen := make(map[string]bool, len(values))
				for _, value := range values {
					if seen[value] {
						continue
					}
					seen[value] = true
					inf.index[value] = append(inf.index[value], base)
				}
			}
		}
		inf.words[base] = rec
	}
	return sc.Err()
}
