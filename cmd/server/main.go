// Command server exposes the inflection engine as a JSON REST API.
//
// Endpoints:
//
//	GET /api/inflect?phrase=<phrase>[&pos=noun|verb|adjective|adverb][&fallback=true]
//	GET /api/search?phrase=<phrase>
//	GET /api/phrase?phrase=<phrase>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	inflect "github.com/english-study-helper/inflect"
)

// ---- JSON response types ------------------------------------------------

type inflectResponse struct {
	Original       string              `json:"original"`
	Forms          map[string][]string `json:"forms"`
	PhraseLabels   []string            `json:"phrase_labels,omitempty"`
	TokenLabels    []string            `json:"token_labels,omitempty"`
	OccurrenceCost float64             `json:"occurrence_cost,omitempty"`
}

type candidateJSON struct {
	Phrase string   `json:"phrase"`
	Cost   float64  `json:"cost"`
	Labels []string `json:"labels"`
}

type searchResponse struct {
	Phrase     string          `json:"phrase"`
	Candidates []candidateJSON `json:"candidates"`
}

type phraseResponse struct {
	Phrase         string              `json:"phrase"`
	Labels         []string            `json:"labels"`
	Forms          map[string][]string `json:"forms"`
	OccurrenceCost float64             `json:"occurrence_cost"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func labelStrings(labels []inflect.Label) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, string(l))
	}
	return out
}

func formsJSON(forms map[inflect.Label][]string) map[string][]string {
	out := make(map[string][]string, len(forms))
	for label, values := range forms {
		out[string(label)] = values
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleInflect(inf *inflect.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		phrase := r.URL.Query().Get("phrase")
		if phrase == "" {
			writeError(w, http.StatusBadRequest, "missing 'phrase' query parameter")
			return
		}
		fallback, _ := strconv.ParseBool(r.URL.Query().Get("fallback"))

		var result *inflect.Result
		switch pos := r.URL.Query().Get("pos"); pos {
		case "noun":
			result = inf.InflectNoun(phrase, fallback)
		case "verb":
			result = inf.InflectVerb(phrase, fallback)
		case "adjective":
			result = inf.InflectAdjective(phrase, fallback)
		case "adverb":
			result = inf.InflectAdverb(phrase, fallback)
		case "":
			result = inf.Inflect(phrase, fallback)
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown pos %q", pos))
			return
		}

		writeJSON(w, http.StatusOK, inflectResponse{
			Original:       result.Original,
			Forms:          formsJSON(result.Forms),
			PhraseLabels:   labelStrings(result.PhraseLabels),
			TokenLabels:    labelStrings(result.TokenLabels),
			OccurrenceCost: result.OccurrenceCost,
		})
	}
}

func handleSearch(inf *inflect.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		phrase := r.URL.Query().Get("phrase")
		if phrase == "" {
			writeError(w, http.StatusBadRequest, "missing 'phrase' query parameter")
			return
		}

		candidates := inf.Search(phrase)
		out := make([]candidateJSON, 0, len(candidates))
		for _, c := range candidates {
			out = append(out, candidateJSON{
				Phrase: c.Phrase,
				Cost:   c.Cost,
				Labels: labelStrings(c.Labels),
			})
		}
		status := http.StatusOK
		if len(out) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, searchResponse{Phrase: phrase, Candidates: out})
	}
}

func handlePhrase(inf *inflect.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		phrase := r.URL.Query().Get("phrase")
		if phrase == "" {
			writeError(w, http.StatusBadRequest, "missing 'phrase' query parameter")
			return
		}
		info := inf.LookupPhraseInfo(phrase)
		if info == nil {
			writeError(w, http.StatusNotFound, fmt.Sprintf("phrase %q not found", phrase))
			return
		}
		writeJSON(w, http.StatusOK, phraseResponse{
			Phrase:         phrase,
			Labels:         labelStrings(info.Labels),
			Forms:          formsJSON(info.Forms),
			OccurrenceCost: info.OccurrenceCost,
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dataPath := flag.String("data", "data/english_inflections.tsv", "path to inflection data file")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading data from %s …", *dataPath)
	inf, err := inflect.New(*dataPath)
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}
	log.Println("data loaded")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/inflect", handleInflect(inf))
	mux.HandleFunc("/api/search", handleSearch(inf))
	mux.HandleFunc("/api/phrase", handlePhrase(inf))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
